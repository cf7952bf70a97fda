package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"expense-tracker-be/internal/cache"
	"expense-tracker-be/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Too many requests, please try again later."

// FixedWindowLimiter counts requests per client IP in fixed windows backed by
// a shared counter store (Redis). Crossing max within one window rejects the
// request with 429.
type FixedWindowLimiter struct {
	store  cache.CounterStore
	max    int64
	window time.Duration
	prefix string
}

// NewFixedWindowLimiter creates a store-backed rate limiter.
// prefix namespaces the counter keys, e.g. "ratelimit:auth:".
func NewFixedWindowLimiter(store cache.CounterStore, max int, window time.Duration, prefix string) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		store:  store,
		max:    int64(max),
		window: window,
		prefix: prefix,
	}
}

// LimitMiddleware returns a Gin middleware enforcing the fixed window.
func (fl *FixedWindowLimiter) LimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := fl.store.Incr(c.Request.Context(), fl.prefix+c.ClientIP(), fl.window)
		if err != nil {
			// A broken limiter store should not take auth down with it.
			log.Printf("ERROR: rate limit store unavailable: %v", err)
			c.Next()
			return
		}
		if count > fl.max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Message: rateLimitMessage,
			})
			return
		}
		c.Next()
	}
}

// RateLimiter holds in-process rate limiters for different IPs. It is the
// fallback when no Redis counter store is configured.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// visitor holds a rate limiter for a specific IP
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates an in-memory per-IP rate limiter. For an allowance of
// n requests per window pass rate.Every(window/n) with burst n.
func NewRateLimiter(rps rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rps,
		burst:    burst,
	}

	// Clean up old visitors every 5 minutes
	go rl.cleanupVisitors()

	return rl
}

// getVisitor returns the rate limiter for a specific IP, creating one if needed
func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: time.Now(),
		}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old visitors to prevent memory leaks
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(5 * time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// LimitMiddleware returns a Gin middleware that rate limits requests
func (rl *RateLimiter) LimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getVisitor(c.ClientIP())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Message: rateLimitMessage,
			})
			return
		}

		c.Next()
	}
}
