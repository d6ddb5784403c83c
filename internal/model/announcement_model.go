package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title                  string         `gorm:"type:text;not null"`
	Summary                string         `gorm:"type:text;not null"`
	TargetAudience         string         `gorm:"type:text"`
	ApplicationDeadline    *time.Time     `gorm:"index"`
	AnnouncementEndDate    *time.Time     `gorm:"index"`
	SubmissionMethod       string         `gorm:"type:text"`
	ApplicationLimitations string         `gorm:"type:text"`
	IsActive               bool           `gorm:"not null;default:false;index"` // Only active rows are visible to the retriever
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime"`
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (Announcement) TableName() string {
	return "announcements"
}
