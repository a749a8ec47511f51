// Package schema validates parsed receipt records before they are persisted.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildReceiptJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the structured record the parser emits. Persistence
// uses it as a final consistency gate.
func BuildReceiptJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"merchant": map[string]any{"type": "string"},
		"address":  map[string]any{"type": "string"},
		"date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"amount":   amountProp(),
		"subtotal": amountProp(),
		"tax":      amountProp(),
		"items": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"category": map[string]any{"type": "string"},
	}
	required := []string{"date", "items"}

	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func amountProp() map[string]any {
	return map[string]any{
		"type":             "number",
		"exclusiveMinimum": 0.0,
		"exclusiveMaximum": 100000.0,
	}
}

// ValidateJSONAgainstSchema compiles the schema map and validates the
// document bytes against it.
func ValidateJSONAgainstSchema(schemaMap map[string]any, doc []byte) error {
	sb, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	compiled, err := jsonschema.CompileString("receipt.schema.json", string(sb))
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
