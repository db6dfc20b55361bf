package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/backend/internal/monitoring"
)

type HealthHandler struct {
	checker *monitoring.HealthChecker
}

func NewHealthHandler(checker *monitoring.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health is the liveness probe. It always answers 200; failing checks are
// reported in the body as a degraded status.
func (h *HealthHandler) Health(c *gin.Context) {
	status, checks := h.checker.Run(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	})
}
