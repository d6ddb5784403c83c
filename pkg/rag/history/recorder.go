package history

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"scholarship-info-be/internal/pkg/logger"
)

// TopicChatTurns carries one message per recorded conversation turn.
const TopicChatTurns = "chat.turns"

// TurnMessage is the payload published for each turn. The consumer side
// persists it; the pipeline never waits for that write.
type TurnMessage struct {
	SessionId string    `json:"session_id"`
	CallerId  uuid.UUID `json:"caller_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder publishes conversation turns onto the in-process bus. Recording
// is best-effort: a failed publish is logged and the turn is lost, it never
// affects the reply already produced.
type Recorder struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewRecorder(publisher message.Publisher, logger logger.ILogger) *Recorder {
	return &Recorder{
		publisher: publisher,
		logger:    logger,
	}
}

func (r *Recorder) Record(sessionId string, callerId uuid.UUID, role, content string) {
	payload, err := json.Marshal(TurnMessage{
		SessionId: sessionId,
		CallerId:  callerId,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		r.logger.Error("history", "Failed to marshal turn message", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionId,
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := r.publisher.Publish(TopicChatTurns, msg); err != nil {
		r.logger.Error("history", "Failed to publish turn message", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionId,
		})
	}
}
