package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billscan/internal/domain"
	"billscan/internal/validator"
)

func newValidator(t *testing.T) *validator.SchemaValidator {
	t.Helper()
	v, err := validator.NewSchemaValidator()
	require.NoError(t, err)
	return v
}

func TestSchemaValidator_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"pagewise_line_items": [
			{
				"page_no": "1",
				"page_type": "Final Bill",
				"bill_items": [
					{"item_name": "Consultation", "item_amount": 500, "item_rate": 500, "item_quantity": 1}
				]
			}
		],
		"document_final_total": 500
	}`)

	result, err := newValidator(t).Validate(raw)

	require.NoError(t, err)
	require.Len(t, result.PagewiseLineItems, 1)
	assert.Equal(t, domain.PageTypeFinalBill, result.PagewiseLineItems[0].PageType)
	assert.Equal(t, "Consultation", result.PagewiseLineItems[0].BillItems[0].ItemName)
	assert.Equal(t, 500.0, result.DocumentFinalTotal)
}

func TestSchemaValidator_EmptyPagesAllowed(t *testing.T) {
	raw := json.RawMessage(`{"pagewise_line_items": [], "document_final_total": 0}`)

	result, err := newValidator(t).Validate(raw)

	require.NoError(t, err)
	assert.Empty(t, result.PagewiseLineItems)
}

func TestSchemaValidator_MissingItemRate(t *testing.T) {
	raw := json.RawMessage(`{
		"pagewise_line_items": [
			{"page_no": "1", "page_type": "Bill Detail", "bill_items": [
				{"item_name": "A", "item_amount": 10, "item_quantity": 1}
			]}
		],
		"document_final_total": 10
	}`)

	result, err := newValidator(t).Validate(raw)

	assert.Nil(t, result)
	require.ErrorIs(t, err, domain.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "item_rate")
}

func TestSchemaValidator_NumericLookingStringRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"pagewise_line_items": [
			{"page_no": "1", "page_type": "Bill Detail", "bill_items": [
				{"item_name": "A", "item_amount": "10.50", "item_rate": 10.5, "item_quantity": 1}
			]}
		],
		"document_final_total": 10.5
	}`)

	result, err := newValidator(t).Validate(raw)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSchemaViolation)
}

func TestSchemaValidator_OutOfEnumPageTypeRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"pagewise_line_items": [
			{"page_no": "1", "page_type": "Lab Report", "bill_items": []}
		],
		"document_final_total": 0
	}`)

	result, err := newValidator(t).Validate(raw)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSchemaViolation)
}

func TestSchemaValidator_MissingDocumentFinalTotal(t *testing.T) {
	raw := json.RawMessage(`{"pagewise_line_items": []}`)

	result, err := newValidator(t).Validate(raw)

	assert.Nil(t, result)
	require.ErrorIs(t, err, domain.ErrSchemaViolation)
	assert.Contains(t, err.Error(), "document_final_total")
}

func TestSchemaValidator_NotAnObject(t *testing.T) {
	result, err := newValidator(t).Validate(json.RawMessage(`[1, 2, 3]`))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSchemaViolation)
}
