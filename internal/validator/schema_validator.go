package validator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"billscan/internal/domain"
	"billscan/internal/extractor"
)

// SchemaValidator enforces the extraction output contract. The model is asked
// for this exact shape via responseSchema, but its output is never trusted:
// every response is re-checked here before any aggregation runs.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the extraction schema once for reuse across
// requests.
func NewSchemaValidator() (*SchemaValidator, error) {
	b, err := json.Marshal(extractor.ExtractionSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extraction.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("extraction.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks raw against the extraction schema and decodes it into a
// typed result. There is no partial acceptance: one bad field anywhere rejects
// the whole document. The returned error carries the validator's field-path
// detail for diagnosing a misbehaving model call.
func (v *SchemaValidator) Validate(raw json.RawMessage) (*domain.RawExtractionResult, error) {
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaViolation, err)
	}
	if err := v.schema.Validate(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaViolation, err)
	}

	var result domain.RawExtractionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaViolation, err)
	}
	return &result, nil
}
