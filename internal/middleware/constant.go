package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

const (
	DefaultMaxClients = 10000
	DefaultClientTTL  = 5 * time.Minute
)

const LogPrefixRateLimit = "internal.middleware.RateLimit"
