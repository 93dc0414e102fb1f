package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// accessClaims is the signed payload of an access token: the principal id as
// subject plus the role and barangay binding captured at issue time. The
// identity resolver re-reads the live principal on every request, so these
// embedded values are a hint for clients, never the authorization source.
type accessClaims struct {
	Role       string `json:"role"`
	BarangayID string `json:"barangay_id,omitempty"`
	jwt.RegisteredClaims
}

// mintAccessToken signs a short-lived HS256 access token for the user.
func mintAccessToken(secret string, u *domain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		Role:       string(u.Role),
		BarangayID: u.BarangayID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
