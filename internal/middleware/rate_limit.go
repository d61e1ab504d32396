package middleware

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"hotel-assistant/pkg/response"
)

// RateLimit throttles callers per chat session, falling back to the client IP.
// It is a no-op when rate limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderSessionID)
		if key == "" {
			key = c.ClientIP()
		}

		if err := mw.limiter.Allow(key); err != nil {
			mw.l.Warnf(c.Request.Context(), "%s: %v", LogPrefixRateLimit, err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client; idle clients expire from the LRU.
type rateLimiter struct {
	mu       sync.Mutex // guards get-or-create in limiterFor
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg Config) *rateLimiter {
	size := cfg.MaxClients
	if size <= 0 {
		size = DefaultMaxClients
	}
	ttl := cfg.ClientTTL
	if ttl <= 0 {
		ttl = DefaultClientTTL
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerMin/10, 1)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.limiterFor(key).Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters.Add(key, limiter)
	return limiter
}
