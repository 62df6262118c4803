package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// limiter keeps one token bucket per client key. Buckets start full at the
// burst size and refill continuously at the configured rate.
type limiter struct {
	mu      sync.Mutex
	cfg     RateLimitConfig
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	return &limiter{cfg: cfg, buckets: make(map[string]*bucket)}
}

// take spends one token for key. When the bucket is empty it reports the
// whole seconds until the next token becomes available.
func (l *limiter) take(key string) (ok bool, retryAfter int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, exists := l.buckets[key]
	if !exists {
		b = &bucket{tokens: float64(l.cfg.BurstSize), last: now}
		l.buckets[key] = b
	}

	b.tokens = math.Min(
		float64(l.cfg.BurstSize),
		b.tokens+now.Sub(b.last).Seconds()*l.cfg.RequestsPerSecond)
	b.last = now

	if b.tokens < 1 {
		if l.cfg.RequestsPerSecond <= 0 {
			return false, 1
		}
		return false, int((1-b.tokens)/l.cfg.RequestsPerSecond) + 1
	}
	b.tokens--
	return true, 0
}

// RateLimit returns a rate limiting middleware keyed by client IP.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	l := newLimiter(cfg)
	limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limit)

			ok, retryAfter := l.take(c.RealIP())
			if !ok {
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				h.Set("X-RateLimit-Remaining", "0")
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
