// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims extracted from a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for token generation and validation.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair and
	// stores the refresh token so it can later be validated and revoked.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token against the stored copy
	// and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes the user's stored refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error
}

// RefreshTokenStore persists issued refresh tokens keyed by user, with a TTL
// matching the token expiry.
type RefreshTokenStore interface {
	// Save stores the refresh token for the user, replacing any previous one.
	Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// Get returns the stored refresh token for the user, or "" if none.
	Get(ctx context.Context, userID uuid.UUID) (string, error)

	// Delete removes the user's stored refresh token.
	Delete(ctx context.Context, userID uuid.UUID) error
}
