package contract

import (
	"context"

	"scholarship-info-be/internal/model"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *model.SystemLog) error
}
