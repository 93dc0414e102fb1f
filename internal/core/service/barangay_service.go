package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// BarangayService administers tenants. The router restricts it to
// unrestricted super_admin accounts; the service itself carries no scope
// because these are the administrative operations that cross tenant
// boundaries by definition.
type BarangayService struct {
	repo   ports.BarangayRepository
	logger zerolog.Logger
}

func NewBarangayService(repo ports.BarangayRepository, logger zerolog.Logger) *BarangayService {
	return &BarangayService{repo: repo, logger: logger}
}

func (s *BarangayService) Create(ctx context.Context, input ports.CreateBarangayInput) (*domain.Barangay, error) {
	now := time.Now().UTC()
	b := &domain.Barangay{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Municipality: input.Municipality,
		Province:     input.Province,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create barangay")
		return nil, err
	}

	s.logger.Info().Str("barangay_id", created.ID).Str("name", created.Name).Msg("barangay registered")
	return created, nil
}

func (s *BarangayService) List(ctx context.Context) ([]domain.Barangay, error) {
	return s.repo.List(ctx)
}

// SetActive flips a barangay's active flag. Deactivation locks out every
// principal of that barangay on their next request.
func (s *BarangayService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info().Str("barangay_id", id).Bool("active", active).Msg("barangay status changed")
	return nil
}
