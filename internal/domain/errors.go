package domain

import "errors"

var (
	ErrMissingAPIKey           = errors.New("extraction API key is not configured")
	ErrDownloadFailed          = errors.New("document download failed")
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrExtractionUnavailable   = errors.New("extraction service unavailable after retries")
	ErrMalformedModelResponse  = errors.New("model returned invalid or unexpected structure")
	ErrSchemaViolation         = errors.New("model output does not match extraction schema")
)
