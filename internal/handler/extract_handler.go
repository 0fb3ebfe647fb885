package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/domain"
	"billscan/internal/service"
)

// ExtractHandler serves the bill extraction endpoint.
type ExtractHandler struct {
	svc service.ExtractionService
}

// NewExtractHandler creates an ExtractHandler.
func NewExtractHandler(svc service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{svc: svc}
}

// Extract processes a document URL, extracts line items, recomputes totals,
// and returns the structured result. The response is either a complete
// success payload or an error; never a partial page set.
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req domain.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			"request body must be JSON with a 'document' URL field")
		return
	}

	resp, err := h.svc.Extract(c.Request.Context(), req.Document)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
