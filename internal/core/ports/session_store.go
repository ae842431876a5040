package ports

import (
	"context"
	"time"
)

// SessionStore tracks live session tokens by their JWT ID, so that a
// logout can revoke a token before its expiry.
type SessionStore interface {
	Save(ctx context.Context, jti, accountID string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}
