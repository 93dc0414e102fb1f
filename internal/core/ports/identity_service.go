package ports

import (
	"context"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// AccessClaims is the decoded content of a verified access token.
type AccessClaims struct {
	PrincipalID string
	Role        domain.Role
	BarangayID  string
}

// IdentityService turns a bearer credential into a live principal.
//
// VerifyAccessToken is a pure cryptographic check: it fails with
// domain.ErrTokenExpired when the expiry has passed (so clients can trigger a
// refresh rather than a re-login) and domain.ErrInvalidToken for any other
// signature or structure problem.
//
// Resolve re-reads the principal on every request; there is no caching, so a
// just-deactivated account or barangay is rejected on its very next request.
type IdentityService interface {
	VerifyAccessToken(token string) (*AccessClaims, error)
	Resolve(ctx context.Context, principalID string) (*domain.User, error)
}

// LastSeenRecorder accepts best-effort activity stamps. Implementations must
// never block the request path.
type LastSeenRecorder interface {
	Record(principalID string)
}
