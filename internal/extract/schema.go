package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordArraySchema is the response-shape contract: a JSON array of objects
// with exactly category, question and answer, all required strings. The same
// shape is sent to the service as a forced response schema and checked
// locally against the bytes that come back.
var recordArraySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": categoryStrings(),
			},
			"question": map[string]any{"type": "string"},
			"answer":   map[string]any{"type": "string"},
		},
		"required": []any{"category", "question", "answer"},
	},
}

func categoryStrings() []any {
	out := make([]any, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, string(c))
	}
	return out
}

// responseSchema builds the genai representation of the record array shape.
func responseSchema() *genai.Schema {
	enum := make([]string, 0, len(Categories))
	for _, c := range Categories {
		enum = append(enum, string(c))
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {Type: genai.TypeString, Enum: enum},
				"question": {Type: genai.TypeString},
				"answer":   {Type: genai.TypeString},
			},
			Required: []string{"category", "question", "answer"},
		},
	}
}

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	b, err := json.Marshal(recordArraySchema)
	if err != nil {
		panic(fmt.Sprintf("marshal record schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("records.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add record schema: %v", err))
	}
	schema, err := compiler.Compile("records.json")
	if err != nil {
		panic(fmt.Sprintf("compile record schema: %v", err))
	}
	return schema
}

// validateShape checks raw response bytes against the record array schema.
func validateShape(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return err
	}
	return nil
}
