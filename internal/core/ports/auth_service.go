package ports

import (
	"context"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// TokenPair is the credential set issued at login and refresh: a short-lived
// signed access token and a longer-lived opaque refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RegisterInput carries the fields for creating a user account. BarangayID is
// only honored for unrestricted callers; everyone else gets their own barangay
// stamped regardless.
type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Role       domain.Role
	BarangayID string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *domain.User, error)
	Logout(ctx context.Context, refreshToken string) error
	// Register creates an account. The caller's rank caps the role it may
	// assign; scoped callers always stamp their own barangay.
	Register(ctx context.Context, caller *domain.User, scope domain.Scope, input RegisterInput) (*domain.User, error)
}
