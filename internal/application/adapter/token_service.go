// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT access token operations.
// Tokens are issued by the account service; the dashboard only validates them.
type TokenService interface {
	// GenerateAccessToken issues an access token for a user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
