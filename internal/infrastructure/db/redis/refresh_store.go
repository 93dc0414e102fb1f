package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bms-ph/records-system/internal/core/domain"
)

// RefreshTokenStore keeps opaque refresh tokens in Redis with their natural
// TTL. Key format: refresh:<token> → principal id. Deleting the key is the
// revocation mechanism; expiry handles abandonment.
type RefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore creates a RefreshTokenStore wrapping the given Redis client.
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

func (s *RefreshTokenStore) Save(ctx context.Context, token, principalID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), principalID, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Resolve returns the principal a token was issued to. Absent, expired and
// revoked tokens are indistinguishable.
func (s *RefreshTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	principalID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("resolve refresh token: %w", err)
	}
	return principalID, nil
}

func (s *RefreshTokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (s *RefreshTokenStore) key(token string) string {
	return "refresh:" + token
}
