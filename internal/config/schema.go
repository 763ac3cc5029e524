package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quotientpow/internal/exercise"
)

const schemaURL = "schema://quotientpow/config.json"

var compiledSchema = sync.OnceValues(compileSchema)

// fileSchema describes config.yaml. Unknown keys are rejected so a typo
// does not silently fall back to a default.
func fileSchema() map[string]any {
	variants := make([]any, 0, len(exercise.Variants))
	for _, v := range exercise.Variants {
		variants = append(variants, v.Name)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"db_path": map[string]any{"type": "string", "minLength": 1},
			"variant": map[string]any{"type": "string", "enum": variants},
			"log": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"level": map[string]any{"type": "string"},
					"file":  map[string]any{"type": "string"},
				},
			},
		},
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, fileSchema()); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// validateFile checks raw YAML against the config file schema. An empty
// document is valid.
func validateFile(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	// The validator expects JSON values; round-trip to drop YAML's int types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config must be a mapping with string keys: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return err
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	return schema.Validate(parsed)
}
