package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"cineseat/internal/handler/httperr"
	"cineseat/internal/pkg/config"
	"cineseat/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitScript implements a token bucket per client key. State lives in
// a Redis hash so the limit holds across instances; the whole
// check-and-decrement runs server-side to stay atomic.
var rateLimitScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill_tokens = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_seconds = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last_refill = tonumber(state[2])

    if tokens == nil or last_refill == nil then
        tokens = capacity
        last_refill = now_ms
    end

    if interval_ms > 0 and refill_tokens > 0 then
        local elapsed = math.max(0, now_ms - last_refill)
        local intervals = math.floor(elapsed / interval_ms)
        if intervals > 0 then
            tokens = math.min(capacity, tokens + (intervals * refill_tokens))
            last_refill = last_refill + (intervals * interval_ms)
        end
    end

    local allowed = 0
    local retry_after_ms = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    else
        local until_next = interval_ms - (now_ms - last_refill)
        if until_next < 0 then until_next = 0 end
        retry_after_ms = until_next
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
    redis.call('EXPIRE', key, ttl_seconds)

    return { allowed, tokens, retry_after_ms }
`)

// NewRateLimiter guards the seat-mutation routes with a per-client token
// bucket. Without a Redis client it degrades to a pass-through, and a
// Redis outage fails open: losing rate limiting is cheaper than refusing
// bookings.
func NewRateLimiter(cfg config.RedisConfig, rdb *redis.Client, logger *slog.Logger) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := "ratelimit:booking:" + c.ClientIP()
		now := time.Now()

		args := []interface{}{
			now.UnixMilli(),
			cfg.RateCapacity,
			cfg.RateRefill,
			cfg.RateInterval.Milliseconds(),
			int64(cfg.RateBucketTTL / time.Second),
		}

		vals, err := rateLimitScript.Run(c.Request.Context(), rdb, []string{key}, args...).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		res, ok := vals.([]interface{})
		if !ok || len(res) < 3 {
			c.Next()
			return
		}
		allowed, _ := res[0].(int64)
		if allowed == 1 {
			c.Next()
			return
		}

		retryAfterMs, _ := res[2].(int64)
		retryAfterSec := int(math.Ceil(float64(retryAfterMs) / 1000.0))
		if retryAfterSec < 1 {
			retryAfterSec = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfterSec))
		httperr.AbortWithError(c, http.StatusTooManyRequests,
			errs.New("rate limit exceeded"),
			fmt.Sprintf("Too many requests, retry in %ds", retryAfterSec), nil)
	}
}
