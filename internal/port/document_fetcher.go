package port

import (
	"context"

	"billscan/internal/domain"
)

// DocumentFetcher retrieves a remote bill document and encodes it for the
// extraction model.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.EncodedDocument, error)
}
