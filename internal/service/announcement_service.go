package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"scholarship-info-be/internal/dto"
	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/model"
	"scholarship-info-be/internal/pkg/logger"
	"scholarship-info-be/internal/pkg/serverutils"
	"scholarship-info-be/internal/repository/specification"
	"scholarship-info-be/internal/repository/unitofwork"
	"scholarship-info-be/pkg/events"
	pkgNats "scholarship-info-be/pkg/nats"
)

type IAnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.CreateAnnouncementResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AnnouncementResponse, error)
	List(ctx context.Context, req *dto.ListAnnouncementsRequest) (*dto.ListAnnouncementsResponse, error)
	Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*dto.AnnouncementResponse, error)
}

type announcementService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewAnnouncementService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	logger logger.ILogger,
) IAnnouncementService {
	return &announcementService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.CreateAnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	announcement := entity.Announcement{
		Id:                     uuid.New(),
		Title:                  req.Title,
		Summary:                req.Summary,
		TargetAudience:         req.TargetAudience,
		ApplicationDeadline:    req.ApplicationDeadline,
		AnnouncementEndDate:    req.AnnouncementEndDate,
		SubmissionMethod:       req.SubmissionMethod,
		ApplicationLimitations: req.ApplicationLimitations,
		IsActive:               true,
		CreatedAt:              time.Now(),
	}

	if err := uow.AnnouncementRepository().Create(ctx, &announcement); err != nil {
		return nil, err
	}

	s.emit(ctx, uow, events.TypeAnnouncementPublished, &announcement)

	return &dto.CreateAnnouncementResponse{Id: announcement.Id}, nil
}

func (s *announcementService) Show(ctx context.Context, id uuid.UUID) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	announcement, err := uow.AnnouncementRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, serverutils.NewNotFoundError("announcement not found")
	}
	return toAnnouncementResponse(announcement), nil
}

func (s *announcementService) List(ctx context.Context, req *dto.ListAnnouncementsRequest) (*dto.ListAnnouncementsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filters := []specification.Specification{}
	if req.ActiveOnly {
		filters = append(filters, specification.ActiveOnly{})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnnouncementRepository()

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)
	announcements, err := repo.FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListAnnouncementsResponse{
		Items:      make([]dto.AnnouncementResponse, 0, len(announcements)),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}
	for _, a := range announcements {
		resp.Items = append(resp.Items, *toAnnouncementResponse(a))
	}
	return resp, nil
}

func (s *announcementService) Update(ctx context.Context, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnnouncementRepository()

	announcement, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, serverutils.NewNotFoundError("announcement not found")
	}

	now := time.Now()
	announcement.Title = req.Title
	announcement.Summary = req.Summary
	announcement.TargetAudience = req.TargetAudience
	announcement.ApplicationDeadline = req.ApplicationDeadline
	announcement.AnnouncementEndDate = req.AnnouncementEndDate
	announcement.SubmissionMethod = req.SubmissionMethod
	announcement.ApplicationLimitations = req.ApplicationLimitations
	announcement.UpdatedAt = &now

	if err := repo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	s.emit(ctx, uow, events.TypeAnnouncementUpdated, announcement)

	return toAnnouncementResponse(announcement), nil
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnnouncementRepository()

	announcement, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if announcement == nil {
		return serverutils.NewNotFoundError("announcement not found")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	s.emit(ctx, uow, events.TypeAnnouncementDeactivated, announcement)
	return nil
}

func (s *announcementService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*dto.AnnouncementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AnnouncementRepository()

	announcement, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, serverutils.NewNotFoundError("announcement not found")
	}

	now := time.Now()
	announcement.IsActive = active
	announcement.UpdatedAt = &now

	if err := repo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	eventType := events.TypeAnnouncementPublished
	if !active {
		eventType = events.TypeAnnouncementDeactivated
	}
	s.emit(ctx, uow, eventType, announcement)

	return toAnnouncementResponse(announcement), nil
}

// emit publishes the domain event and writes an audit row. Both are
// best-effort: the admin operation already succeeded.
func (s *announcementService) emit(ctx context.Context, uow unitofwork.UnitOfWork, eventType string, announcement *entity.Announcement) {
	if s.eventPublisher != nil {
		event := events.NewAnnouncementEvent(eventType, announcement.Id.String(), announcement.Title)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("announcement", "Failed to publish domain event", map[string]interface{}{
				"error":      err.Error(),
				"event_type": eventType,
			})
		}
	}

	module := "announcement"
	details, _ := json.Marshal(map[string]interface{}{
		"announcement_id": announcement.Id,
		"event_type":      eventType,
	})
	audit := model.SystemLog{
		Level:   "info",
		Module:  &module,
		Message: eventType,
		Details: details,
	}
	if err := uow.SystemLogRepository().Create(ctx, &audit); err != nil {
		s.logger.Warn("announcement", "Failed to write audit log", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func toAnnouncementResponse(a *entity.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
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
		UpdatedAt:              a.UpdatedAt,
	}
}
