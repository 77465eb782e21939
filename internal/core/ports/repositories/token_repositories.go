package repositories

import (
	"context"
	"time"
)

// TokenRevocationStore remembers revoked token ids until the token would have expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
