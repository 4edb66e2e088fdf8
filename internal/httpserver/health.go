package httpserver

import (
	"luminaria-skill/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Luminária skill online"
	HealthVersion = "1.0.0"
	ServiceName   = "luminaria-skill"
)

func (srv HTTPServer) healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("healthy"))
}

// readyCheck reports ready once the skill route is mounted.
// @Summary Readiness Check
// @Description Check if the API is ready to serve skill requests
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 500 {object} response.Resp "Skill handler missing"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.skillHandler == nil {
		response.InternalError(c, errSkillNotConfigured)
		return
	}
	response.OK(c, srv.healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("alive"))
}
