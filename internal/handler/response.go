package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/domain"
	"billscan/internal/extractor"
)

// ErrorResponse is the envelope for all failed requests. Successful requests
// return domain.ExtractionResponse directly.
type ErrorResponse struct {
	IsSuccess bool      `json:"is_success"`
	Error     *APIError `json:"error"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{
		IsSuccess: false,
		Error:     &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates pipeline errors to HTTP status codes and error
// codes. Expected errors pass through with their own detail; anything
// unrecognized is surfaced generically, naming only the error's type.
func MapDomainError(err error) (status int, code, msg string) {
	var apiErr *extractor.APIError
	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError, "MISSING_CREDENTIAL",
			"extraction API key is not configured on the server"
	case errors.Is(err, domain.ErrDownloadFailed):
		return http.StatusBadRequest, "DOCUMENT_DOWNLOAD_FAILED", err.Error()
	case errors.Is(err, domain.ErrUnsupportedDocumentType):
		return http.StatusBadRequest, "UNSUPPORTED_DOCUMENT_TYPE", err.Error()
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return http.StatusServiceUnavailable, "EXTRACTION_SERVICE_UNAVAILABLE",
			"extraction service failed after multiple retries"
	case errors.As(err, &apiErr):
		// The model service's own status and message propagate verbatim.
		return apiErr.StatusCode, "MODEL_SERVICE_ERROR", apiErr.Message
	case errors.Is(err, domain.ErrMalformedModelResponse),
		errors.Is(err, domain.ErrSchemaViolation):
		return http.StatusInternalServerError, "MALFORMED_MODEL_RESPONSE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR",
			fmt.Sprintf("unexpected %T while processing the request", err)
	}
}

// HandleError maps a pipeline error and sends the appropriate error response.
// Full detail for 5xx errors stays in the server log; the caller only sees
// the mapped message.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
