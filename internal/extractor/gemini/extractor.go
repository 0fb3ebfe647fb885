package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"billscan/internal/config"
	"billscan/internal/domain"
	"billscan/internal/extractor"
	"billscan/internal/port"
)

const (
	apiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	providerName    = "gemini"
	defaultModel    = "gemini-2.5-flash-preview-09-2025"
	defaultRetries  = 3
	rawPreviewLimit = 500
)

// Extractor implements port.BillExtractor against Google's Gemini
// generateContent API.
type Extractor struct {
	apiKey      string
	model       string
	endpoint    string
	maxRetries  int
	backoffBase time.Duration
	client      *http.Client
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithEndpoint points the extractor at a custom API endpoint (for testing).
func WithEndpoint(endpoint string) Option {
	return func(e *Extractor) { e.endpoint = endpoint }
}

// WithBackoffBase overrides the base unit of the exponential retry delay
// (for testing; the delay for attempt n is base << n).
func WithBackoffBase(d time.Duration) Option {
	return func(e *Extractor) { e.backoffBase = d }
}

// NewExtractor creates a Gemini-based bill extractor.
func NewExtractor(cfg *config.ParserConfig, opts ...Option) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultRetries
	}
	e := &Extractor{
		apiKey:      cfg.APIKey,
		model:       model,
		maxRetries:  maxRetries,
		backoffBase: time.Second,
		client:      &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.endpoint == "" {
		e.endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return e
}

// Ready reports whether the extractor holds a credential. Checked before any
// outbound I/O so a misconfigured deployment fails fast.
func (e *Extractor) Ready() error {
	if e.apiKey == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}

// Extract sends the encoded document to Gemini and returns the generated JSON
// plus token usage. HTTP 429 responses are retried with exponential backoff up
// to maxRetries total attempts; every other failure is terminal on first
// occurrence.
func (e *Extractor) Extract(ctx context.Context, doc domain.EncodedDocument) (*port.ExtractOutput, error) {
	if err := e.Ready(); err != nil {
		return nil, err
	}

	prompt := extractor.BuildBillExtractionPrompt()

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": doc.MimeType,
							"data":      doc.Data,
						},
					},
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   extractor.ExtractionSchema(),
		},
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": prompt},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		out, err := e.doCall(ctx, bodyBytes)
		if err == nil {
			return out, nil
		}

		var rlErr *extractor.RateLimitError
		if !errors.As(err, &rlErr) {
			return nil, err
		}
		rlErr.Attempt = attempt
		lastErr = err

		if attempt < e.maxRetries-1 {
			if err := sleep(ctx, e.backoffBase<<attempt); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, lastErr)
}

func (e *Extractor) doCall(ctx context.Context, body []byte) (*port.ExtractOutput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &extractor.RateLimitError{
			Provider: providerName,
			Err:      fmt.Errorf("status 429: %s", apiErrorMessage(respBody)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &extractor.APIError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(respBody),
		}
	}

	return parseResponse(respBody)
}

// geminiResponse models the generateContent response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

func parseResponse(body []byte) (*port.ExtractOutput, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %v", domain.ErrMalformedModelResponse, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", domain.ErrMalformedModelResponse)
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no parts", domain.ErrMalformedModelResponse)
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: generated text is not JSON (raw: %s)",
			domain.ErrMalformedModelResponse, truncate(text, rawPreviewLimit))
	}

	return &port.ExtractOutput{
		RawJSON: json.RawMessage(text),
		Usage: domain.TokenUsage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.PromptTokenCount + resp.UsageMetadata.CandidatesTokenCount,
		},
	}, nil
}

// apiErrorMessage pulls the service's own message out of a Gemini error body.
func apiErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return truncate(string(body), rawPreviewLimit)
}

// sleep blocks for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
