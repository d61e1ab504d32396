package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-assistant/pkg/response"
)

const (
	HealthMessage = "Hotel assistant API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "hotel-assistant"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck answers as long as the process serves HTTP.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports ready once the configured readiness probe passes.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "API is not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(); err != nil {
			srv.l.Warnf(c.Request.Context(), "readiness: %v", err)
			response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, "not ready: "+err.Error()), nil)
			return
		}
	}
	response.OK(c, statusBody("ready"))
}

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
