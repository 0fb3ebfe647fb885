package domain

// BillItem is a single extracted line item, exactly as written on the bill.
type BillItem struct {
	ItemName     string  `json:"item_name"`
	ItemAmount   float64 `json:"item_amount"`
	ItemRate     float64 `json:"item_rate"`
	ItemQuantity float64 `json:"item_quantity"`
}

// PageExtraction holds the line items extracted from a single page.
// Item order matches the order on the page and must be preserved.
type PageExtraction struct {
	PageNo    string     `json:"page_no"`
	PageType  PageType   `json:"page_type"`
	BillItems []BillItem `json:"bill_items"`
}

// RawExtractionResult is the full model output for one document. The
// model-reported DocumentFinalTotal is informational only; the response total
// is always recomputed from the line items.
type RawExtractionResult struct {
	PagewiseLineItems  []PageExtraction `json:"pagewise_line_items"`
	DocumentFinalTotal float64          `json:"document_final_total"`
}

// TokenUsage accumulates token counts across model calls.
type TokenUsage struct {
	TotalTokens  int `json:"total_tokens"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Add folds another usage block into the cumulative counts.
func (t *TokenUsage) Add(other TokenUsage) {
	t.InputTokens += other.InputTokens
	t.OutputTokens += other.OutputTokens
	t.TotalTokens += other.InputTokens + other.OutputTokens
}

// ExtractionData is the aggregated data block of a successful response.
type ExtractionData struct {
	PagewiseLineItems   []PageExtraction `json:"pagewise_line_items"`
	FinalTotalExtracted float64          `json:"final_total_extracted"`
	TotalItemCount      int              `json:"total_item_count"`
	SubTotalExtracted   *float64         `json:"sub_total_extracted"`
}

// ExtractionResponse is the final payload returned to the caller.
type ExtractionResponse struct {
	IsSuccess  bool           `json:"is_success"`
	TokenUsage TokenUsage     `json:"token_usage"`
	Data       ExtractionData `json:"data"`
}

// ExtractionRequest is the inbound request body.
type ExtractionRequest struct {
	Document string `json:"document" binding:"required"`
}

// EncodedDocument is a fetched document ready for the extraction model.
type EncodedDocument struct {
	MimeType string
	Data     string // standard base64
}

// DataURL renders the document as a data URL so consumers can split it back
// into (media type, encoded bytes).
func (d EncodedDocument) DataURL() string {
	return "data:" + d.MimeType + ";base64," + d.Data
}
