package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/pkg/response"
)

// KeyFunc builds a rate-limit key from the request.
type KeyFunc func(c *gin.Context) string

// AllowFunc returns true when the request bypasses the limit.
type AllowFunc func(*gin.Context) bool

// KeyByIP limits by client IP only.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndMethod keeps reads and writes from the same client in separate buckets.
func KeyByIPAndMethod() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:" + strings.ToLower(c.Request.Method) + ":ip:" + ipFromCtx(c)
	}
}

// INCR and set the expiry on the first hit, atomically.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimit is a fixed-window limiter backed by redis. A nil client or a
// non-positive max disables it, and redis errors let the request through.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc, logger *logrus.Logger) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if allow != nil && allow(c) {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := keyFn(c)

		count, err := incrExpireScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int()
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField("key", key).Warn("rate limiter unavailable")
			}
			c.Next()
			return
		}

		resetSec := 0
		if ttl, err := rdb.PTTL(ctx, key).Result(); err == nil && ttl > 0 {
			resetSec = int((ttl + time.Second - 1) / time.Second)
		}
		remaining := max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error[any](c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
