// Package api provides HTTP handlers for wikipath.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	version   string
	upstream  string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. upstream is the MediaWiki endpoint being queried.
func NewHealthHandler(version, upstream string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		upstream:  upstream,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Upstream      string  `json:"upstream,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
//
// The upstream wiki is not probed: a health check that fans out to a third
// party would count against its rate limits.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Upstream:      h.upstream,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
