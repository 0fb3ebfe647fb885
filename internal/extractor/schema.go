package extractor

import "billscan/internal/domain"

// ExtractionSchema returns the declarative JSON schema for the model's output.
// The same map is sent to Gemini as generationConfig.responseSchema and
// compiled by the validator, so the contract the model is held to and the
// contract we verify are literally one object.
func ExtractionSchema() map[string]any {
	pageTypes := make([]any, 0, 3)
	for _, pt := range domain.PageTypes() {
		pageTypes = append(pageTypes, string(pt))
	}

	billItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"item_name":     map[string]any{"type": "string"},
			"item_amount":   map[string]any{"type": "number"},
			"item_rate":     map[string]any{"type": "number"},
			"item_quantity": map[string]any{"type": "number"},
		},
		"required": []any{"item_name", "item_amount", "item_rate", "item_quantity"},
	}

	page := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"page_no": map[string]any{"type": "string"},
			"page_type": map[string]any{
				"type": "string",
				"enum": pageTypes,
			},
			"bill_items": map[string]any{
				"type":  "array",
				"items": billItem,
			},
		},
		"required": []any{"page_no", "page_type", "bill_items"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pagewise_line_items": map[string]any{
				"type":  "array",
				"items": page,
			},
			"document_final_total": map[string]any{"type": "number"},
		},
		"required": []any{"pagewise_line_items", "document_final_total"},
	}
}
