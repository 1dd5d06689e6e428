package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "todo_backend/internal/feature/auth/adapters"
	"todo_backend/internal/feature/auth/usecase"
	"todo_backend/internal/platform/session"
)

// NewTokenDenylist creates a TokenDenylist implementation.
// If Redis is available, it returns a Redis-backed implementation
// whose entries expire with the tokens they revoke.
// Otherwise, it falls back to a database table.
func NewTokenDenylist(rdb *redis.Client, db *gorm.DB) usecase.TokenDenylist {
	if rdb != nil {
		return session.NewDenylistRedis(rdb, "revoked")
	}
	return authadapters.NewDenylistGorm(db)
}
