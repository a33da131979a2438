// Package di provides dependency injection factories for application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "recipe_backend/internal/feature/auth/adapters"
	"recipe_backend/internal/feature/auth/usecase"
	"recipe_backend/internal/platform/session"
)

// NewSessionRepository selects the refresh-session store.
// Redis is preferred when available; otherwise sessions live in Postgres.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionPostgres(db)
}
