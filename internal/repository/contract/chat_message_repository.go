package contract

import (
	"context"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/repository/specification"
)

// ChatMessageRepository is append-only: turns are never updated or deleted
// by the portal.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
