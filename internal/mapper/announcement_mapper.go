package mapper

import (
	"time"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/model"

	"gorm.io/gorm"
)

type AnnouncementMapper struct{}

func NewAnnouncementMapper() *AnnouncementMapper {
	return &AnnouncementMapper{}
}

func (m *AnnouncementMapper) ToEntity(a *model.Announcement) *entity.Announcement {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Announcement{
		Id:                     a.Id,
		Title:                  a.Title,
		Summary:                a.Summary,
		TargetAudience:         a.TargetAudience,
		ApplicationDeadline:    a.ApplicationDeadline,
		AnnouncementEndDate:    a.AnnouncementEndDate,
		SubmissionMethod:       a.SubmissionMethod,
		ApplicationLimitations: a.ApplicationLimitations,
		IsActive:               a.IsActive,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              updatedAt,
		DeletedAt:              deletedAt,
		IsDeleted:              a.DeletedAt.Valid,
	}
}

func (m *AnnouncementMapper) ToModel(a *entity.Announcement) *model.Announcement {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Announcement{
		Id:                     a.Id,
		Title:                  a.Title,
		Summary:                a.Summary,
		TargetAudience:         a.TargetAudience,
		ApplicationDeadline:    a.ApplicationDeadline,
		AnnouncementEndDate:    a.AnnouncementEndDate,
		SubmissionMethod:       a.SubmissionMethod,
		ApplicationLimitations: a.ApplicationLimitations,
		IsActive:               a.IsActive,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              updatedAt,
		DeletedAt:              deletedAt,
	}
}
