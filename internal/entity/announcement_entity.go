package entity

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	Id                     uuid.UUID
	Title                  string
	Summary                string
	TargetAudience         string
	ApplicationDeadline    *time.Time
	AnnouncementEndDate    *time.Time
	SubmissionMethod       string
	ApplicationLimitations string
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              *time.Time
	DeletedAt              *time.Time
	IsDeleted              bool
}
