package httpserver

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	pkgErrors "billomat-invoicing/pkg/errors"
	"billomat-invoicing/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Billomat invoicing API"
	HealthVersion = "1.0.0"
	ServiceName   = "billomat-invoicing"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Service not ready")

// readyCheck runs every readiness check and refuses traffic while draining.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "API is draining or a check failed"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	ready := !srv.draining.Load()
	checks := make(map[string]interface{}, len(srv.readinessChecks))
	names := make([]string, 0, len(srv.readinessChecks))
	for name := range srv.readinessChecks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := srv.readinessChecks[name](ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	if !ready {
		response.Error(c, errNotReady, map[string]interface{}{
			"status":   "not_ready",
			"draining": srv.draining.Load(),
			"checks":   checks,
			"service":  ServiceName,
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"checks":  checks,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
