package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billscan/internal/domain"
)

func TestTokenUsage_Add(t *testing.T) {
	var usage domain.TokenUsage
	usage.Add(domain.TokenUsage{InputTokens: 100, OutputTokens: 20})
	usage.Add(domain.TokenUsage{InputTokens: 50, OutputTokens: 10})

	assert.Equal(t, 150, usage.InputTokens)
	assert.Equal(t, 30, usage.OutputTokens)
	assert.Equal(t, 180, usage.TotalTokens)
}

func TestPageType_Valid(t *testing.T) {
	for _, pt := range domain.PageTypes() {
		assert.True(t, pt.Valid(), string(pt))
	}
	assert.False(t, domain.PageType("Lab Report").Valid())
	assert.False(t, domain.PageType("").Valid())
}

func TestExtractionResponse_WireFormat(t *testing.T) {
	resp := domain.ExtractionResponse{
		IsSuccess:  true,
		TokenUsage: domain.TokenUsage{TotalTokens: 30, InputTokens: 20, OutputTokens: 10},
		Data: domain.ExtractionData{
			PagewiseLineItems: []domain.PageExtraction{
				{PageNo: "1", PageType: domain.PageTypeBillDetail, BillItems: []domain.BillItem{
					{ItemName: "A", ItemAmount: 1.5, ItemRate: 1.5, ItemQuantity: 1},
				}},
			},
			FinalTotalExtracted: 1.5,
			TotalItemCount:      1,
		},
	}

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	// Field names are fixed by the public contract; sub_total_extracted is
	// present and null while unused.
	s := string(b)
	assert.Contains(t, s, `"is_success":true`)
	assert.Contains(t, s, `"final_total_extracted":1.5`)
	assert.Contains(t, s, `"total_item_count":1`)
	assert.Contains(t, s, `"sub_total_extracted":null`)
	assert.Contains(t, s, `"page_type":"Bill Detail"`)
	assert.Contains(t, s, `"item_quantity":1`)
}
