package httpapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// requestLogger logs each API request with method, path, status, and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		engine.IncrAPIRequests()
		c.Next()
		slog.Info("api request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// recovery converts panics into the API's 500 envelope instead of a dropped
// connection. Analysis itself never panics on string input; this guards the
// boundary (stores, rendering).
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("api panic recovered", slog.Any("panic", r), slog.String("path", c.Request.URL.Path))
				engine.IncrAPIErrors()
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "internal error",
				})
			}
		}()
		c.Next()
	}
}

// rateLimit applies a per-client token bucket. Limiters are kept per client
// IP and pruned lazily when stale.
func rateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = cl
			// Prune stale clients while we hold the lock; the map stays
			// small for typical deployments.
			cutoff := time.Now().Add(-10 * time.Minute)
			for key, other := range clients {
				if other.lastSeen.Before(cutoff) && key != ip {
					delete(clients, key)
				}
			}
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			engine.IncrRateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
