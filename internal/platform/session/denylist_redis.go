// Package session provides the Redis-backed refresh token denylist.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenylistRedis records revoked refresh token ids in Redis.
// Entries carry a TTL equal to the remaining life of the token, so the
// denylist never outgrows the set of tokens that are still
// cryptographically valid.
type DenylistRedis struct {
	client *redis.Client
	prefix string
}

// NewDenylistRedis creates a new DenylistRedis instance.
func NewDenylistRedis(client *redis.Client, prefix string) *DenylistRedis {
	return &DenylistRedis{
		client: client,
		prefix: prefix,
	}
}

// key returns the Redis key for a revoked token id.
func (r *DenylistRedis) key(jti string) string {
	return fmt.Sprintf("%s:%s", r.prefix, jti)
}

// Revoke marks a refresh token id as revoked until the token's own expiry.
// Tokens that are already past their expiry need no entry.
func (r *DenylistRedis) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether a refresh token id has been revoked.
func (r *DenylistRedis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if err := r.client.Get(ctx, r.key(jti)).Err(); err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
