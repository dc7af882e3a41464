package middlewares

import (
	"crypto/subtle"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"net/http"
	"strings"
	"t9dict/internal/app/infrastructure/storage"
	"time"
)

const (
	maxTrackedClients = 65536
	limiterIdleTTL    = 10 * time.Minute
)

type Middlewares struct {
	limiters *storage.Cache[*rate.Limiter]
}

func New() *Middlewares {
	return &Middlewares{
		limiters: storage.NewIdleCache[*rate.Limiter](maxTrackedClients, limiterIdleTTL),
	}
}

func (m *Middlewares) Auth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if expected == "" || !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(auth, "Bearer ")), []byte(expected)) != 1 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

// RateLimit allows each client IP `requests` calls per `per`, with bursts up
// to `requests`. Zero values disable the limit. Limiters of clients idle for
// limiterIdleTTL are dropped, and at most maxTrackedClients are kept.
func (m *Middlewares) RateLimit(requests int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if requests <= 0 || per <= 0 {
			c.Next()
			return
		}

		l := m.limiters.GetOrSet(c.ClientIP(), func() *rate.Limiter {
			return rate.NewLimiter(rate.Every(per/time.Duration(requests)), requests)
		})
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
