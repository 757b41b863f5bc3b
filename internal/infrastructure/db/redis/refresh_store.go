package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/funews/news-management-system/internal/core/domain"
)

// RefreshTokenStore persists single-use refresh credentials in Redis.
// Key format: refresh:<token>, value: JSON-encoded identity.
type RefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore creates a RefreshTokenStore wrapping the given client.
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

type storedIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// Save records the credential with the given TTL.
func (s *RefreshTokenStore) Save(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(storedIdentity{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  int(identity.Role),
	})
	if err != nil {
		return fmt.Errorf("refresh save: %w", err)
	}
	return s.client.Set(ctx, key(token), payload, ttl).Err()
}

// Take retrieves and deletes the credential in one GETDEL round trip,
// enforcing single use even under concurrent exchanges of the same token.
func (s *RefreshTokenStore) Take(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := s.client.GetDel(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("refresh take: %w", err)
	}

	var stored storedIdentity
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, fmt.Errorf("refresh take: decode: %w", err)
	}
	role, err := domain.ParseRole(stored.Role)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	return &domain.Identity{ID: stored.ID, Email: stored.Email, Role: role}, nil
}

func key(token string) string {
	return "refresh:" + token
}
