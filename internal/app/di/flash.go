// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"blog_backend/internal/platform/flash"
)

// flashTTL bounds how long an unread flash survives in Redis.
const flashTTL = 5 * time.Minute

// NewFlashStore creates a flash.Store implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to a cookie.
func NewFlashStore(rdb *redis.Client, secureCookies bool) flash.Store {
	if rdb != nil {
		return flash.NewRedisStore(rdb, "flash", flashTTL, secureCookies)
	}
	return flash.NewCookieStore("flash", secureCookies)
}
