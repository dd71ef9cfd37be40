package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	limiters   = make(map[string]*rate.Limiter)
	limitersMu sync.Mutex
)

func limiterFor(key string, r rate.Limit, burst int) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	limiter, exists := limiters[key]
	if !exists {
		limiter = rate.NewLimiter(r, burst)
		limiters[key] = limiter
	}
	return limiter
}

// RateLimit throttles a route per key, typically the client IP. Applied to
// the public write endpoints (login, contact submission) so the anonymous
// surface cannot be hammered.
func RateLimit(r rate.Limit, burst int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := limiterFor(keyFunc(c), r, burst)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down."})
			return
		}

		c.Next()
	}
}
