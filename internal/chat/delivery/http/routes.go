package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Only message processing is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/message", mw.RateLimit(), h.SendMessage)
	rg.POST("/classify", h.Classify)
	rg.GET("/routes", h.AvailableRoutes)
}
