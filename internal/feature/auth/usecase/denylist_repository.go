package usecase

import (
	"context"
	"time"
)

// TokenDenylist abstracts the revocation store for refresh tokens.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/session, adapters).
type TokenDenylist interface {
	// Revoke marks a refresh token id as revoked until expiresAt.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	// IsRevoked reports whether a refresh token id has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
