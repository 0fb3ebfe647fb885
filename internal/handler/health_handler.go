package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/port"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	extractor port.BillExtractor
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(billExtractor port.BillExtractor) *HealthHandler {
	return &HealthHandler{extractor: billExtractor}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the service can actually serve extractions, which
// requires the model credential to be configured.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.extractor.Ready(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
