package middleware

import (
	"net/http"
	"sync"

	"stayline/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Applied to the booking
// endpoints only; reads are not limited.
type RateLimiter struct {
	limiters sync.Map
	rps      float64
	burst    int
}

func NewRateLimiter(cfg config.BookingConfig) *RateLimiter {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{rps: cfg.RateLimitRPS, burst: burst}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.getLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
