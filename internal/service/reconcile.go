package service

import (
	"math"

	"billscan/internal/domain"
)

// Reconcile recomputes the document totals from the extracted line items,
// walking pages and items in order. The model's self-reported
// document_final_total is ignored: LLM arithmetic is not guaranteed exact, so
// summation over atomic line items is the correctness guarantee. Rounding to
// 2 decimals happens exactly once, on the final sum, so per-page rounding
// error cannot compound.
func Reconcile(raw *domain.RawExtractionResult) (finalTotal float64, itemCount int) {
	var sum float64
	for _, page := range raw.PagewiseLineItems {
		for _, item := range page.BillItems {
			sum += item.ItemAmount
			itemCount++
		}
	}
	return math.Round(sum*100) / 100, itemCount
}
