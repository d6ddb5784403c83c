package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"scholarship-info-be/internal/constant"
	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/pkg/llm"
	"scholarship-info-be/pkg/rag/contextbuild"
	"scholarship-info-be/pkg/rag/intent"
	"scholarship-info-be/pkg/websearch"
)

// ErrGenerateFailed marks the one fatal pipeline stage. The service layer
// maps it to an upstream error response.
var ErrGenerateFailed = errors.New("answer generation failed")

// State names one pipeline stage, used for logging and the failure policy.
type State string

const (
	StateClassify         State = "classify"
	StateRetrieveInternal State = "retrieve_internal"
	StateSearchExternal   State = "search_external"
	StateAssemble         State = "assemble"
	StateGenerate         State = "generate"
	StatePostprocess      State = "postprocess"
	StatePersist          State = "persist"
)

// FailurePolicy describes what a stage failure does to the turn.
type FailurePolicy string

const (
	// Degrade: the pipeline continues with an empty result for the stage.
	Degrade FailurePolicy = "degrade"
	// Fatal: the turn is aborted and an error surfaces to the caller.
	Fatal FailurePolicy = "fatal"
)

// failurePolicies documents how each stage behaves when it fails. Only
// generation is fatal; everything around it degrades or is fire-and-forget.
var failurePolicies = map[State]FailurePolicy{
	StateClassify:         Degrade, // fail-open to RELATED
	StateRetrieveInternal: Degrade, // empty selection, try web search
	StateSearchExternal:   Degrade, // empty results, answer from general knowledge
	StateAssemble:         Degrade, // pure, cannot fail
	StateGenerate:         Fatal,
	StatePostprocess:      Degrade, // pure, cannot fail
	StatePersist:          Degrade, // async, logged only
}

// PolicyFor reports the failure policy of a stage.
func PolicyFor(state State) FailurePolicy {
	return failurePolicies[state]
}

type IntentClassifier interface {
	Classify(ctx context.Context, message string) intent.Label
}

type InternalRetriever interface {
	Retrieve(ctx context.Context, question string) []*entity.Announcement
}

type ExternalSearcher interface {
	Search(ctx context.Context, question string, history []llm.Message) []websearch.Result
}

type AnswerGenerator interface {
	Generate(ctx context.Context, question string, history []llm.Message, assembled contextbuild.AssembledContext) (string, error)
}

// TurnRecorder persists conversation turns off the request path.
type TurnRecorder interface {
	Record(sessionId string, callerId uuid.UUID, role, content string)
}

type Request struct {
	Message   string
	History   []llm.Message
	SessionId string
	CallerId  uuid.UUID
}

type Result struct {
	Reply      string
	SessionId  string
	SourceType contextbuild.SourceType
	Citations  []string
}

// Pipeline walks a question through classification, retrieval, fallback
// search, assembly, generation and post-processing, recording both turns
// on the way out.
type Pipeline struct {
	classifier IntentClassifier
	retriever  InternalRetriever
	searcher   ExternalSearcher
	generator  AnswerGenerator
	finalize   func(text string, sourceType contextbuild.SourceType, citations []string) string
	recorder   TurnRecorder
	logger     logger.ILogger
}

func NewPipeline(
	classifier IntentClassifier,
	retriever InternalRetriever,
	searcher ExternalSearcher,
	generator AnswerGenerator,
	finalize func(string, contextbuild.SourceType, []string) string,
	recorder TurnRecorder,
	logger logger.ILogger,
) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		retriever:  retriever,
		searcher:   searcher,
		generator:  generator,
		finalize:   finalize,
		recorder:   recorder,
		logger:     logger,
	}
}

func (p *Pipeline) Execute(ctx context.Context, req Request) (Result, error) {
	if p.classifier.Classify(ctx, req.Message) == intent.LabelUnrelated {
		p.logger.Info("pipeline", "Question classified as unrelated", map[string]interface{}{
			"session_id": req.SessionId,
		})
		p.recorder.Record(req.SessionId, req.CallerId, constant.ChatMessageRoleUser, req.Message)
		p.recorder.Record(req.SessionId, req.CallerId, constant.ChatMessageRoleAssistant, constant.RejectionMessageV1)
		return Result{
			Reply:      constant.RejectionMessageV1,
			SessionId:  req.SessionId,
			SourceType: contextbuild.SourceNone,
		}, nil
	}

	announcements := p.retriever.Retrieve(ctx, req.Message)

	var results []websearch.Result
	sourceType := contextbuild.SourceInternal
	if len(announcements) == 0 {
		sourceType = contextbuild.SourceExternal
		results = p.searcher.Search(ctx, req.Message, req.History)
		if len(results) == 0 {
			sourceType = contextbuild.SourceNone
		}
	}

	assembled := contextbuild.Assemble(sourceType, announcements, results)

	answer, err := p.generator.Generate(ctx, req.Message, req.History, assembled)
	if err != nil {
		p.logger.Error("pipeline", "Answer generation failed", map[string]interface{}{
			"error":      err.Error(),
			"session_id": req.SessionId,
		})
		return Result{}, fmt.Errorf("%w: %v", ErrGenerateFailed, err)
	}

	reply := p.finalize(answer, assembled.SourceType, assembled.ReferencedIds)

	p.recorder.Record(req.SessionId, req.CallerId, constant.ChatMessageRoleUser, req.Message)
	p.recorder.Record(req.SessionId, req.CallerId, constant.ChatMessageRoleAssistant, reply)

	return Result{
		Reply:      reply,
		SessionId:  req.SessionId,
		SourceType: assembled.SourceType,
		Citations:  assembled.ReferencedIds,
	}, nil
}
