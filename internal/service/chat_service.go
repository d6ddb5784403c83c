package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/dto"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/internal/pkg/serverutils"
	"scholarship-info-be/internal/repository/specification"
	"scholarship-info-be/internal/repository/unitofwork"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/rag/executor"
	"scholarship-info-be/pkg/ratelimit"
)

type IChatService interface {
	Ask(ctx context.Context, callerId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error)
	GetHistory(ctx context.Context, callerId uuid.UUID, sessionId string) (*dto.GetHistoryResponse, error)
}

type chatService struct {
	pipeline        *executor.Pipeline
	limiter         *ratelimit.Limiter
	uowFactory      unitofwork.RepositoryFactory
	historyMaxTurns int
	logger          logger.ILogger
}

func NewChatService(
	pipeline *executor.Pipeline,
	limiter *ratelimit.Limiter,
	uowFactory unitofwork.RepositoryFactory,
	historyMaxTurns int,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		pipeline:        pipeline,
		limiter:         limiter,
		uowFactory:      uowFactory,
		historyMaxTurns: historyMaxTurns,
		logger:          logger,
	}
}

func (s *chatService) Ask(ctx context.Context, callerId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, serverutils.NewValidationError("message must not be empty")
	}

	allowed, used, err := s.limiter.Allow(ctx, callerId.String())
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.Warn("chat", "Caller exceeded the rate limit", map[string]interface{}{
			"caller_id": callerId,
			"used":      used,
			"limit":     s.limiter.Limit(),
		})
		return nil, serverutils.NewRateLimitError(
			fmt.Sprintf("Too many requests, try again within %s.", s.limiter.Window()))
	}

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	history := make([]llm.Message, 0, len(req.History))
	start := 0
	if s.historyMaxTurns > 0 && len(req.History) > s.historyMaxTurns {
		start = len(req.History) - s.historyMaxTurns
	}
	for _, turn := range req.History[start:] {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	result, err := s.pipeline.Execute(ctx, executor.Request{
		Message:   req.Message,
		History:   history,
		SessionId: sessionId,
		CallerId:  callerId,
	})
	if err != nil {
		if errors.Is(err, executor.ErrGenerateFailed) {
			return nil, serverutils.NewUpstreamError(constant.GenerationFailureMessageV1)
		}
		return nil, err
	}

	return &dto.AskResponse{
		Response:  result.Reply,
		SessionId: result.SessionId,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, callerId uuid.UUID, sessionId string) (*dto.GetHistoryResponse, error) {
	if strings.TrimSpace(sessionId) == "" {
		return nil, serverutils.NewValidationError("session_id is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByCallerID{CallerID: callerId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.GetHistoryResponse{
		SessionId: sessionId,
		Turns:     make([]dto.ChatTurnResponse, 0, len(turns)),
	}
	for _, t := range turns {
		resp.Turns = append(resp.Turns, dto.ChatTurnResponse{
			Id:        t.Id,
			Role:      t.Role,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		})
	}
	return resp, nil
}
