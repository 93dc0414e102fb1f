package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, scope domain.Scope, postedBy string, input ports.AnnouncementInput) (*domain.Announcement, error) {
	barangayID, err := scope.StampTenant(input.BarangayID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ann := &domain.Announcement{
		ID:         uuid.NewString(),
		BarangayID: barangayID,
		Title:      input.Title,
		Body:       input.Body,
		PostedBy:   postedBy,
		Pinned:     input.Pinned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, ann)
	if err != nil {
		s.logger.Error().Err(err).Str("barangay_id", barangayID).Msg("failed to create announcement")
		return nil, err
	}
	return created, nil
}

func (s *AnnouncementService) Get(ctx context.Context, scope domain.Scope, id string) (*domain.Announcement, error) {
	ann, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.ValidateOwnership(ann.BarangayID); err != nil {
		return nil, domain.ErrAnnouncementNotFound
	}
	return ann, nil
}

func (s *AnnouncementService) List(ctx context.Context, scope domain.Scope, limit, offset int64) ([]domain.Announcement, error) {
	return s.repo.List(ctx, scope, limit, offset)
}

func (s *AnnouncementService) Delete(ctx context.Context, scope domain.Scope, id string) error {
	ann, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := scope.ValidateOwnership(ann.BarangayID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
