// Package middleware provides HTTP middleware for the wikipath API.
package middleware

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxClients is the number of per-client limiters kept; the least recently
// seen client is forgotten first.
const maxClients = 10_000

// RateLimiter applies a token bucket per client IP. Every path search fans out
// into many upstream requests, so the inbound rate is kept low.
type RateLimiter struct {
	mu      sync.Mutex
	clients *lru.Cache[string, *rate.Limiter]
	rate    rate.Limit
	burst   int
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec requests per client with the given burst.
func NewRateLimiter(ratePerSec float64, burst int) (*RateLimiter, error) {
	clients, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, fmt.Errorf("creating client cache: %w", err)
	}

	return &RateLimiter{
		clients: clients,
		rate:    rate.Limit(ratePerSec),
		burst:   burst,
	}, nil
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.clients.Get(ip); ok {
		return l
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.clients.Add(ip, l)

	return l
}

// Handler returns Gin middleware that applies rate limiting per client IP.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// SetTrustedProxies(nil) in the router keeps ClientIP from honoring X-Forwarded-For.
		if !rl.limiter(c.ClientIP()).Allow() {
			respondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")

			return
		}

		c.Next()
	}
}
