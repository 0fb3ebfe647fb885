package port

import (
	"context"
	"encoding/json"

	"billscan/internal/domain"
)

// ExtractOutput carries the model's raw structured output plus the token
// usage of the call that produced it.
type ExtractOutput struct {
	RawJSON json.RawMessage
	Usage   domain.TokenUsage
}

// BillExtractor abstracts the LLM-based bill extraction call.
type BillExtractor interface {
	// Ready reports whether the extractor is configured to make calls.
	// It performs no I/O.
	Ready() error
	Extract(ctx context.Context, doc domain.EncodedDocument) (*ExtractOutput, error)
}
