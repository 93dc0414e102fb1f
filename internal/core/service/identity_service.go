package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// IdentityService verifies access tokens and resolves principals. It holds no
// per-request state and performs no caching: every request pays one fresh
// lookup so account and barangay deactivations take effect immediately.
type IdentityService struct {
	repo      ports.UserRepository
	jwtSecret string
	lastSeen  ports.LastSeenRecorder
}

// NewIdentityService constructs an IdentityService. lastSeen may be nil to
// disable activity stamping.
func NewIdentityService(repo ports.UserRepository, jwtSecret string, lastSeen ports.LastSeenRecorder) *IdentityService {
	return &IdentityService{repo: repo, jwtSecret: jwtSecret, lastSeen: lastSeen}
}

// VerifyAccessToken checks signature, structure and expiry. Expiry is a
// distinct error so clients can refresh instead of re-authenticating.
func (s *IdentityService) VerifyAccessToken(token string) (*ports.AccessClaims, error) {
	claims := &accessClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.AccessClaims{
		PrincipalID: claims.Subject,
		Role:        domain.Role(claims.Role),
		BarangayID:  claims.BarangayID,
	}, nil
}

// Resolve loads the live principal and enforces account and barangay status.
// Any store failure, including context cancellation, surfaces as an error and
// therefore a rejection upstream.
func (s *IdentityService) Resolve(ctx context.Context, principalID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.StatusActive {
		return nil, domain.ErrAccountInactive
	}
	if user.BarangayID != "" && !user.BarangayActive {
		return nil, domain.ErrTenantInactive
	}

	if s.lastSeen != nil {
		s.lastSeen.Record(user.ID)
	}

	return user, nil
}
