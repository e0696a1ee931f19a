package gen

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// schemaLanguage describes the YAML schema document format itself (spec.md
// §6: "documents are validated against a JSON Schema description of the
// schema language"), so a malformed schema is rejected with a pointer to the
// offending field before the generator ever looks at it.
var schemaLanguage = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"records"},
	Properties: map[string]*jsonschema.Schema{
		"records": {
			Type:  "array",
			Items: recordSchema,
		},
	},
}

var recordSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"name", "fields"},
	Properties: map[string]*jsonschema.Schema{
		"name":    {Type: "string"},
		"package": {Type: "string"},
		"fields": {
			Type:  "array",
			Items: fieldSchema,
		},
	},
}

var fieldSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"name"},
	// Reject directive keys outside the listed set (the "false" schema).
	AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	Properties: map[string]*jsonschema.Schema{
		"name":     {Type: "string"},
		"json_key": {Type: "string"},
		"go_type":  {Type: "string"},
		"type":     {Type: "string"},
		"len":      {Type: "integer"},
		"offset":   {Type: "integer"},
		"also_as":  {Type: "string"},
		"decoder":  {Type: "boolean"},
		"element": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"kind":         {Type: "string", Enum: []any{"tuple", "decoder"}},
				"decoder_type": {Type: "string"},
				"tuple": {
					Type: "array",
					Items: &jsonschema.Schema{
						Type:     "object",
						Required: []string{"name", "go_type"},
						Properties: map[string]*jsonschema.Schema{
							"name":    {Type: "string"},
							"go_type": {Type: "string"},
						},
					},
				},
			},
		},
	},
}

var resolvedSchemaLanguage = func() *jsonschema.Resolved {
	resolved, err := schemaLanguage.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("gen: schema language self-describes invalidly: %v", err))
	}

	return resolved
}()

// jsonCategorySchema returns the JSON Schema type constraint for a resolved
// field category, independent of the Go type that produced it.
func jsonCategorySchema(f Field) *jsonschema.Schema {
	switch f.Category {
	case CategoryString:
		return &jsonschema.Schema{Type: "string"}
	case CategoryNumber:
		return &jsonschema.Schema{Type: "number"}
	case CategoryBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case CategoryArray:
		if f.Element != nil && f.Element.Kind == ElementDecoder {
			return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "object"}}
		}

		return &jsonschema.Schema{Type: "array"}
	case CategoryObject:
		return &jsonschema.Schema{Type: "object"}
	default:
		return &jsonschema.Schema{}
	}
}

// JSONSchema builds a *jsonschema.Schema describing the wire shape r's
// decoder expects, independently of the decoder itself — useful for
// validating a market-data message against a record's field set without
// generating or running any decoding code.
func (r Record) JSONSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(r.Fields))
	required := make([]string, 0, len(r.Fields))

	for _, f := range r.Fields {
		properties[f.JSONKey] = jsonCategorySchema(f)
		required = append(required, f.JSONKey)
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// ValidateSchemaDocument checks raw YAML schema bytes against the schema
// language's own meta-schema, independently of whether the document would
// also resolve cleanly into records (e.g. an unsupported element kind is
// caught here with a JSON-pointer-addressed message, rather than surfacing
// as a generic ErrInvalidElement).
func ValidateSchemaDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrReadSchema, err)
	}

	if err := resolvedSchemaLanguage.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	return nil
}
