package service

import (
	"context"

	"scholarship-info-be/internal/entity"
	"scholarship-info-be/internal/repository/specification"
	"scholarship-info-be/internal/repository/unitofwork"
	"scholarship-info-be/pkg/rag/retrieval"
)

// announcementSource adapts the repository layer to the retriever's
// candidate pool interface.
type announcementSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAnnouncementSource(uowFactory unitofwork.RepositoryFactory) retrieval.AnnouncementSource {
	return &announcementSource{uowFactory: uowFactory}
}

func (s *announcementSource) FindActive(ctx context.Context) ([]*entity.Announcement, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AnnouncementRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}
