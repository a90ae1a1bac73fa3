package httpserver

import (
	"time"

	"agentforge/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "agentforge"
	ServiceVersion = "1.0.0"
)

type healthResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	UptimeSec   int64  `json:"uptime_sec"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
		UptimeSec:   int64(time.Since(srv.startedAt).Seconds()),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck reports ready once routes are mapped; the router catalog is
// encoded before the server is constructed.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.health("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
