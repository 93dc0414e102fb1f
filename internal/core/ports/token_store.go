package ports

import (
	"context"
	"time"
)

// RefreshTokenStore persists opaque refresh tokens. Tokens expire at the
// supplied TTL and can be revoked individually, which is the only server-side
// invalidation path in the credential design.
type RefreshTokenStore interface {
	Save(ctx context.Context, token, principalID string, ttl time.Duration) error
	// Resolve returns the principal id a token was issued to, or
	// domain.ErrInvalidRefreshToken when absent, expired or revoked.
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
