package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-assistant/pkg/log"
)

// RequestID tags every request with an id (taken from X-Request-ID or freshly generated)
// and stores it, plus the chat session id when sent, in the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, id)
		if sid := c.GetHeader(HeaderSessionID); sid != "" {
			ctx = context.WithValue(ctx, log.SessionIDKey, sid)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
