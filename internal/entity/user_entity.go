package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
