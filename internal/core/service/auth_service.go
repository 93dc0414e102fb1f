package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// AuthService implements credential issuance: login, refresh rotation, logout
// and account registration. It issues tokens; it never authorizes requests —
// that is the identity resolver's job on each inbound call.
type AuthService struct {
	users      ports.UserRepository
	refresh    ports.RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, refresh ports.RefreshTokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		refresh:    refresh,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Login verifies email+password and issues a token pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.StatusActive {
		return nil, nil, domain.ErrAccountInactive
	}
	if user.BarangayID != "" && !user.BarangayActive {
		return nil, nil, domain.ErrTenantInactive
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return pair, user, nil
}

// Refresh rotates a refresh token: the old token is revoked, the principal is
// re-read fresh (so deactivations cut refresh off too), and a new pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, *domain.User, error) {
	if refreshToken == "" {
		return nil, nil, domain.ErrInvalidRefreshToken
	}

	principalID, err := s.refresh.Resolve(ctx, refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindByID(ctx, principalID)
	if err != nil {
		return nil, nil, err
	}
	if user.Status != domain.StatusActive {
		return nil, nil, domain.ErrAccountInactive
	}
	if user.BarangayID != "" && !user.BarangayActive {
		return nil, nil, domain.ErrTenantInactive
	}

	if err := s.refresh.Revoke(ctx, refreshToken); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Logout revokes the refresh token. The access token stays valid until its
// absolute expiry; there is no server-side access-token revocation list.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrInvalidRefreshToken
	}
	return s.refresh.Revoke(ctx, refreshToken)
}

// Register creates an account inside the caller's scope. Scoped callers always
// create accounts in their own barangay regardless of the payload; unrestricted
// callers must name a target barangay, except when minting another unrestricted
// super_admin. Nobody mints an account above their own rank.
func (s *AuthService) Register(ctx context.Context, caller *domain.User, scope domain.Scope, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || !input.Role.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}
	if caller == nil || !domain.HasMinimumRole(caller.Role, input.Role) {
		return nil, domain.ErrInsufficientRole
	}

	var barangayID string
	if input.Role == domain.RoleSuperAdmin && scope.Unrestricted {
		// empty binding mints an unrestricted super admin
		barangayID = input.BarangayID
	} else {
		var err error
		barangayID, err = scope.StampTenant(input.BarangayID)
		if err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Role:         input.Role,
		BarangayID:   barangayID,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Str("barangay_id", created.BarangayID).Msg("account registered")
	return created, nil
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	access, err := mintAccessToken(s.jwtSecret, user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := s.refresh.Save(ctx, refreshToken, user.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}
