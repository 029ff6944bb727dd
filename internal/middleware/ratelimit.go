package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ai-health-assistant/pkg/response"
)

// RateLimit throttles requests per user (falling back to client IP on
// unauthenticated routes). Exceeding the limit yields 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = sc.UserID
		}

		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			c.JSON(http.StatusTooManyRequests, response.Resp{Message: "Too many requests, slow down"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per key with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique keys
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	return limiter.Allow()
}
