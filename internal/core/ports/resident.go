package ports

import (
	"context"
	"time"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// ResidentRepository persists resident records. List honors the supplied
// scope filter; FindByID is deliberately unscoped so the service layer can run
// the ownership check on the stored record itself.
type ResidentRepository interface {
	Insert(ctx context.Context, r *domain.Resident) (*domain.Resident, error)
	FindByID(ctx context.Context, id string) (*domain.Resident, error)
	List(ctx context.Context, scope domain.Scope, query ResidentQuery) ([]domain.Resident, error)
	Update(ctx context.Context, r *domain.Resident) error
	Delete(ctx context.Context, id string) error
}

// ResidentQuery narrows a scoped resident listing.
type ResidentQuery struct {
	Search      string
	HouseholdID string
	VotersOnly  bool
	Limit       int64
	Offset      int64
}

// ResidentInput carries the writable fields of a resident record. BarangayID
// is only honored for unrestricted callers.
type ResidentInput struct {
	BarangayID  string
	FirstName   string
	MiddleName  string
	LastName    string
	BirthDate   time.Time
	Sex         string
	CivilStatus domain.CivilStatus
	Address     string
	Contact     string
	HouseholdID string
	IsVoter     bool
}

type ResidentService interface {
	Create(ctx context.Context, scope domain.Scope, input ResidentInput) (*domain.Resident, error)
	Get(ctx context.Context, scope domain.Scope, id string) (*domain.Resident, error)
	List(ctx context.Context, scope domain.Scope, query ResidentQuery) ([]domain.Resident, error)
	Update(ctx context.Context, scope domain.Scope, id string, input ResidentInput) (*domain.Resident, error)
	Delete(ctx context.Context, scope domain.Scope, id string) error
}
