package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAnnouncementRequest struct {
	Title                  string     `json:"title" validate:"required,max=255"`
	Summary                string     `json:"summary" validate:"required"`
	TargetAudience         string     `json:"target_audience"`
	ApplicationDeadline    *time.Time `json:"application_deadline"`
	AnnouncementEndDate    *time.Time `json:"announcement_end_date"`
	SubmissionMethod       string     `json:"submission_method"`
	ApplicationLimitations string     `json:"application_limitations"`
}

type CreateAnnouncementResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateAnnouncementRequest struct {
	Id                     uuid.UUID
	Title                  string     `json:"title" validate:"required,max=255"`
	Summary                string     `json:"summary" validate:"required"`
	TargetAudience         string     `json:"target_audience"`
	ApplicationDeadline    *time.Time `json:"application_deadline"`
	AnnouncementEndDate    *time.Time `json:"announcement_end_date"`
	SubmissionMethod       string     `json:"submission_method"`
	ApplicationLimitations string     `json:"application_limitations"`
}

type AnnouncementResponse struct {
	Id                     uuid.UUID  `json:"id"`
	Title                  string     `json:"title"`
	Summary                string     `json:"summary"`
	TargetAudience         string     `json:"target_audience"`
	ApplicationDeadline    *time.Time `json:"application_deadline"`
	AnnouncementEndDate    *time.Time `json:"announcement_end_date"`
	SubmissionMethod       string     `json:"submission_method"`
	ApplicationLimitations string     `json:"application_limitations"`
	IsActive               bool       `json:"is_active"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at"`
}

type ListAnnouncementsRequest struct {
	Page       int  `query:"page"`
	PageSize   int  `query:"page_size"`
	ActiveOnly bool `query:"active_only"`
}

type ListAnnouncementsResponse struct {
	Items      []AnnouncementResponse `json:"items"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
}
