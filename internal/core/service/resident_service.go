package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// ResidentService manages resident records within the caller's scope. Every
// by-id operation validates ownership against the stored record, independent
// of the list-query filter, so direct id access cannot cross barangays.
type ResidentService struct {
	repo   ports.ResidentRepository
	logger zerolog.Logger
}

func NewResidentService(repo ports.ResidentRepository, logger zerolog.Logger) *ResidentService {
	return &ResidentService{repo: repo, logger: logger}
}

func (s *ResidentService) Create(ctx context.Context, scope domain.Scope, input ports.ResidentInput) (*domain.Resident, error) {
	barangayID, err := scope.StampTenant(input.BarangayID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resident := &domain.Resident{
		ID:          uuid.NewString(),
		BarangayID:  barangayID,
		FirstName:   input.FirstName,
		MiddleName:  input.MiddleName,
		LastName:    input.LastName,
		BirthDate:   input.BirthDate,
		Sex:         input.Sex,
		CivilStatus: input.CivilStatus,
		Address:     input.Address,
		Contact:     input.Contact,
		HouseholdID: input.HouseholdID,
		IsVoter:     input.IsVoter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, resident)
	if err != nil {
		s.logger.Error().Err(err).Str("barangay_id", barangayID).Msg("failed to create resident")
		return nil, err
	}
	return created, nil
}

// Get returns one resident. A record in a foreign barangay is reported as not
// found so the response never confirms its existence.
func (s *ResidentService) Get(ctx context.Context, scope domain.Scope, id string) (*domain.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.ValidateOwnership(resident.BarangayID); err != nil {
		return nil, domain.ErrResidentNotFound
	}
	return resident, nil
}

func (s *ResidentService) List(ctx context.Context, scope domain.Scope, query ports.ResidentQuery) ([]domain.Resident, error) {
	return s.repo.List(ctx, scope, query)
}

func (s *ResidentService) Update(ctx context.Context, scope domain.Scope, id string, input ports.ResidentInput) (*domain.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := scope.ValidateOwnership(resident.BarangayID); err != nil {
		return nil, err
	}

	// the record stays in its own barangay; payload tenant fields are ignored
	resident.FirstName = input.FirstName
	resident.MiddleName = input.MiddleName
	resident.LastName = input.LastName
	resident.BirthDate = input.BirthDate
	resident.Sex = input.Sex
	resident.CivilStatus = input.CivilStatus
	resident.Address = input.Address
	resident.Contact = input.Contact
	resident.HouseholdID = input.HouseholdID
	resident.IsVoter = input.IsVoter
	resident.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *ResidentService) Delete(ctx context.Context, scope domain.Scope, id string) error {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := scope.ValidateOwnership(resident.BarangayID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
