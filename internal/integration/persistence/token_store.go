package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
)

const refreshTokenKeyPrefix = "refresh_token:"

// redisTokenStore implements adapter.RefreshTokenStore on Redis. One key
// per user; Redis expires the key when the token's TTL passes.
type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new Redis-backed refresh token store.
func NewRedisTokenStore(client *redis.Client) adapter.RefreshTokenStore {
	return &redisTokenStore{client: client}
}

func refreshTokenKey(userID uuid.UUID) string {
	return refreshTokenKeyPrefix + userID.String()
}

// Save stores the refresh token for the user, replacing any previous one.
func (s *redisTokenStore) Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get returns the stored refresh token for the user, or "" if none.
func (s *redisTokenStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.client.Get(ctx, refreshTokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load refresh token: %w", err)
	}
	return token, nil
}

// Delete removes the user's stored refresh token.
func (s *redisTokenStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
