package contract

import (
	"context"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Announcement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Announcement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
