package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/internal/repository/unitofwork"
	"scholarship-info-be/pkg/rag/history"
)

const persistTimeout = 5 * time.Second

// IConsumerService drains recorded chat turns off the in-process bus and
// persists them. This keeps the database write out of the request path.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, history.TopicChatTurns)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always acks: a turn that cannot be stored is logged and
// dropped, never retried against the same failure.
func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload history.TurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal turn message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	turn := entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: payload.SessionId,
		CallerId:  payload.CallerId,
		Role:      payload.Role,
		Content:   payload.Content,
		CreatedAt: payload.CreatedAt,
	}

	if err := uow.ChatMessageRepository().Create(ctx, &turn); err != nil {
		cs.logger.Error("consumer", "Failed to persist chat turn", map[string]interface{}{
			"error":      err.Error(),
			"session_id": payload.SessionId,
		})
	}
}
