package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// DocumentRequestService handles resident document applications and their
// processing lifecycle.
type DocumentRequestService struct {
	repo   ports.DocumentRequestRepository
	logger zerolog.Logger
}

func NewDocumentRequestService(repo ports.DocumentRequestRepository, logger zerolog.Logger) *DocumentRequestService {
	return &DocumentRequestService{repo: repo, logger: logger}
}

func (s *DocumentRequestService) Create(ctx context.Context, scope domain.Scope, requestedBy string, input ports.CreateDocumentRequestInput) (*domain.DocumentRequest, error) {
	barangayID, err := scope.StampTenant(input.BarangayID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dr := &domain.DocumentRequest{
		ID:          uuid.NewString(),
		BarangayID:  barangayID,
		RequestedBy: requestedBy,
		Type:        input.Type,
		Purpose:     input.Purpose,
		Status:      domain.RequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, dr)
	if err != nil {
		s.logger.Error().Err(err).Str("barangay_id", barangayID).Msg("failed to create document request")
		return nil, err
	}

	s.logger.Info().Str("request_id", created.ID).Str("type", string(created.Type)).Msg("document request filed")
	return created, nil
}

func (s *DocumentRequestService) Get(ctx context.Context, scope domain.Scope, id string) (*domain.DocumentRequest, error) {
	dr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.ValidateOwnership(dr.BarangayID); err != nil {
		return nil, domain.ErrDocumentRequestNotFound
	}
	return dr, nil
}

func (s *DocumentRequestService) List(ctx context.Context, scope domain.Scope, query ports.DocumentRequestQuery) ([]domain.DocumentRequest, error) {
	return s.repo.List(ctx, scope, query)
}

// Advance moves a request to its next lifecycle status after validating both
// ownership and the transition itself.
func (s *DocumentRequestService) Advance(ctx context.Context, scope domain.Scope, id string, next domain.RequestStatus, remarks, processedBy string) (*domain.DocumentRequest, error) {
	dr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.ValidateOwnership(dr.BarangayID); err != nil {
		return nil, err
	}
	if !dr.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	dr.Status = next
	dr.Remarks = remarks
	dr.ProcessedBy = processedBy
	dr.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, dr); err != nil {
		return nil, err
	}
	return dr, nil
}
