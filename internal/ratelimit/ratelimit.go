package ratelimit

import (
	"context"
	"net/http"
	"time"

	"estate-voice-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Store counts requests per key within a fixed window.
type Store interface {
	// Incr bumps the counter for key and returns the post-increment
	// count. The counter expires window after its first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisStore is the production Store. A single script keeps the
// increment and expiry atomic so a crash between them cannot leave an
// immortal counter.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

var fixedWindowScript = redis.NewScript(`
-- KEYS[1] = counter key
-- ARGV[1] = window_ms (int)
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
else
  -- Ensure TTL exists even if key already existed without TTL
  if redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
  end
end
return current
`)

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return fixedWindowScript.Run(ctx, s.rdb, []string{key}, window.Milliseconds()).Int64()
}

// Middleware limits each client IP to perMinute requests across the
// public API. Failures of the store fail open: dropping legitimate
// traffic because Redis hiccuped is worse than briefly not limiting.
func Middleware(store Store, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, err := store.Incr(c.Request.Context(), key, time.Minute)
		if err != nil {
			logger.FromGin(c).Warn("rate limit store unavailable", "err", err)
			c.Next()
			return
		}

		if count > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
