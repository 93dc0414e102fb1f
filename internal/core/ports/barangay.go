package ports

import (
	"context"

	"github.com/bms-ph/records-system/internal/core/domain"
)

type BarangayRepository interface {
	Create(ctx context.Context, b *domain.Barangay) (*domain.Barangay, error)
	FindByID(ctx context.Context, id string) (*domain.Barangay, error)
	List(ctx context.Context) ([]domain.Barangay, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// CreateBarangayInput carries the fields for registering a new barangay.
type CreateBarangayInput struct {
	Name         string
	Municipality string
	Province     string
}

// BarangayService is reserved for unrestricted super admins; the router gates
// every method behind the super_admin role and an unrestricted scope.
type BarangayService interface {
	Create(ctx context.Context, input CreateBarangayInput) (*domain.Barangay, error)
	List(ctx context.Context) ([]domain.Barangay, error)
	SetActive(ctx context.Context, id string, active bool) error
}
