package dto

import (
	"time"

	"github.com/google/uuid"
)

type TurnDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type AskRequest struct {
	Message   string    `json:"message" validate:"required,max=2000"`
	History   []TurnDTO `json:"history" validate:"dive"`
	SessionId string    `json:"session_id"` // empty starts a new session
}

type AskResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}

type ChatTurnResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type GetHistoryResponse struct {
	SessionId string             `json:"session_id"`
	Turns     []ChatTurnResponse `json:"turns"`
}
