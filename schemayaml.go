package validum

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// BuildYAML compiles a schema authored as YAML (§11 supplemented domain-
// stack feature: the dialect has no native YAML grammar, but authoring
// schemas by hand is far more pleasant in YAML than JSON).
func (c *Compiler) BuildYAML(data []byte) (*Validator, error) {
	return c.BuildYAMLTitled(data, "")
}

// BuildYAMLTitled is BuildYAML with an explicit report title.
func (c *Compiler) BuildYAMLTitled(data []byte, title string) (*Validator, error) {
	schema, err := ParseSchemaYAML(data)
	if err != nil {
		return nil, err
	}
	return c.BuildTitled(schema, title)
}

// ParseSchemaYAML decodes a YAML schema document into a Schema tree. It
// round-trips through a generic value and JSON rather than implementing
// a second, YAML-specific decoder, so Schema's existing bare-string
// sugar (schema.go's UnmarshalJSON) and the compiler's discriminator
// dispatch apply unchanged to YAML-authored schemas.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	normalized := normalizeYAMLKeys(generic)

	buf, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("YAML schema could not convert to JSON: %w", err)
	}

	var schema Schema
	if err := json.Unmarshal(buf, &schema); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	return &schema, nil
}

// normalizeYAMLKeys converts map[any]any nodes goccy/go-yaml may produce
// for non-string keys into map[string]any, which is all json.Marshal
// accepts as an object. Schema documents only ever use string keys, so
// this is a pure type-shape fixup, not a semantic transform.
func normalizeYAMLKeys(v any) any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = normalizeYAMLKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = normalizeYAMLKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(m))
		for i, val := range m {
			out[i] = normalizeYAMLKeys(val)
		}
		return out
	default:
		return v
	}
}
