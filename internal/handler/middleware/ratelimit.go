package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"ticket-seckill/internal/handler/httperr"
	"ticket-seckill/internal/infra/ratelimit"
	"ticket-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Key(parts ...string) string
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

var errRateLimited = errs.New("rate limit exceeded")

type RateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware accepts a nil limiter, which disables limiting.
func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit keys the bucket by authenticated user (or client IP) and route. Redis errors let the
// request through.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		subject := "ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			subject = "user:" + userID.String()
		}
		key := m.limiter.Key(subject, c.Request.Method+" "+c.FullPath())

		decision, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", gin.H{"retry_after": secs})
			return
		}

		c.Next()
	}
}
