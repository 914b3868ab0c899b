package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema describes a question catalog file: a non-empty array of
// four-option questions whose correct label is one of A-D.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"option_a": map[string]any{"type": "string", "minLength": 1},
			"option_b": map[string]any{"type": "string", "minLength": 1},
			"option_c": map[string]any{"type": "string", "minLength": 1},
			"option_d": map[string]any{"type": "string", "minLength": 1},
			"correct_option": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D"},
			},
		},
		"required": []any{
			"question_text", "option_a", "option_b", "option_c", "option_d", "correct_option",
		},
		"additionalProperties": false,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validate checks raw catalog JSON against the schema before any row
// touches the database.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}
