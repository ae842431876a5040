package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks live session tokens in Redis, keyed by JWT ID.
// Key format: session:<jti>. The TTL matches the token lifetime, so
// stale sessions expire on their own; logout deletes eagerly.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records a live session for the account, expiring after ttl.
func (s *SessionStore) Save(ctx context.Context, jti, accountID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(jti), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Exists reports whether the session is still live (not revoked, not expired).
func (s *SessionStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Delete revokes the session.
func (s *SessionStore) Delete(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, s.key(jti)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(jti string) string {
	return "session:" + jti
}
