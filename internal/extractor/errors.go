package extractor

import "fmt"

// RateLimitError indicates the model service returned HTTP 429. It is the
// only retryable failure class; the backoff loop retries on it and nothing else.
type RateLimitError struct {
	Provider string
	Attempt  int
	Err      error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (attempt %d): %v", e.Provider, e.Attempt+1, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// APIError is a terminal model-service error. It carries the service's own
// status code and message so the request boundary can propagate them verbatim.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}
