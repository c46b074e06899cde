package handler

import (
	"net/http"

	"webhook-gateway/internal/adapter/http/dto"
	"webhook-gateway/internal/core/ports"
	"webhook-gateway/pkg/apperror"
	"webhook-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a gin handler that pings every dependency and reports
// per-dependency status. Degraded dependencies yield 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// MaintenanceHandler handles retention cleanup.
type MaintenanceHandler struct {
	healthSvc ports.HealthService
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(healthSvc ports.HealthService) *MaintenanceHandler {
	return &MaintenanceHandler{healthSvc: healthSvc}
}

// Cleanup purges events past the retention window and reports the count.
func (h *MaintenanceHandler) Cleanup(c *gin.Context) {
	var req dto.CleanupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	deleted, err := h.healthSvc.Cleanup(c.Request.Context(), req.RetentionDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": deleted})
}
