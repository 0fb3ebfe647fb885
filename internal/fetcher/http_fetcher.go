package fetcher

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"billscan/internal/config"
	"billscan/internal/domain"
)

const urlLogLimit = 50

// HTTPFetcher downloads bill documents over HTTP. It implements
// port.DocumentFetcher.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the configured download timeout.
func NewHTTPFetcher(cfg *config.FetcherConfig) *HTTPFetcher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the document at url and returns it base64-encoded along
// with its declared media type. Only image/* and application/pdf documents
// are accepted.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*domain.EncodedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, downloadErr(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, downloadErr(url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, downloadErr(url, fmt.Errorf("status %d", resp.StatusCode))
	}

	mimeType := mediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mimeType, "image/") && mimeType != "application/pdf" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentType, mimeType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, downloadErr(url, err)
	}

	return &domain.EncodedDocument{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(body),
	}, nil
}

// mediaType strips parameters from a Content-Type header value. An absent
// header defaults to image/jpeg, matching common bill-upload hosts that omit it.
func mediaType(contentType string) string {
	if contentType == "" {
		return "image/jpeg"
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mt
}

func downloadErr(url string, cause error) error {
	return fmt.Errorf("%w: url %s: %v", domain.ErrDownloadFailed, truncateURL(url), cause)
}

// truncateURL limits how much of the source URL is echoed into errors and logs.
func truncateURL(url string) string {
	if len(url) <= urlLogLimit {
		return url
	}
	return url[:urlLogLimit] + "..."
}
