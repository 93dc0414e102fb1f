package ports

import (
	"context"
	"time"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// FindByID must join the bound barangay's active flag so the identity
// resolver can reject principals of deactivated barangays in one lookup.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	TouchLastSeen(ctx context.Context, id string, at time.Time) error
}
