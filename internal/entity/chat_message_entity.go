package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId string
	CallerId  uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
