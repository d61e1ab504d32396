package middleware

import (
	"time"

	"hotel-assistant/pkg/log"
)

// Config tunes the request guards.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
	MaxClients       int
	ClientTTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. The limiter is nil when rate limiting is disabled.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
