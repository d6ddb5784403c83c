package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters chat messages by their opaque session id.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByCallerID filters chat messages by caller identity.
type ByCallerID struct {
	CallerID uuid.UUID
}

func (s ByCallerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("caller_id = ?", s.CallerID)
}
