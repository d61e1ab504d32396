package log

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type ctxKey string

const (
	// RequestIDKey is the context key holding the request id.
	RequestIDKey ctxKey = "request_id"
	// SessionIDKey is the context key holding the chat session id.
	SessionIDKey ctxKey = "session_id"
)

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
)
