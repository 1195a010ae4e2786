package rulepack

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rulePackSchema is the shape contract every stored rule-pack must satisfy
// before it is accepted into the cache. Unknown compliance identifiers and
// section keys are deliberately NOT constrained here; they degrade to
// verbatim display downstream.
const rulePackSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "version", "name", "required_sections", "default_tone", "dos", "donts"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "required_sections": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "minLength": 1}
    },
    "default_tone": {"type": "string", "minLength": 1},
    "dos": {"type": "array", "items": {"type": "string"}},
    "donts": {"type": "array", "items": {"type": "string"}},
    "structure_hints": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "compliance_rules": {
      "type": "array",
      "items": {"type": "string"}
    },
    "modes": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["required_sections"],
        "properties": {
          "description": {"type": "string"},
          "required_sections": {
            "type": "array",
            "minItems": 1,
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

var compiledSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(rulePackSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programmer error, not a runtime condition.
		panic(fmt.Sprintf("rulepack: invalid embedded schema: %v", err))
	}
	compiledSchema = schema
}

// validateShape checks a generically decoded rule-pack document against the
// embedded schema and returns the flattened violation list on failure.
func validateShape(doc any) error {
	result, err := compiledSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("schema violations: %s", strings.Join(problems, "; "))
}
