package validum

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Schema is the declarative, JSON/YAML-serializable description of one
// validator node (spec.md §3 Data Model). A Compiler turns a Schema
// tree into an immutable Node graph.
//
// Every field beyond Type is optional and only meaningful for the
// matching discriminator, mirroring the original TypedDict union this
// dialect is modeled on: "any", "none", "bool", "int", "float", "str",
// "date", "literal", "list", "set", "dict", "optional", "union",
// "record", "function", "recursive-ref", "recursive-container".
type Schema struct {
	Type string `json:"type"`

	// Leaf constraint fields (int/float/str/date), spec.md §4.3. Le/Ge/Lt/Gt
	// are untyped because their shape depends on Type: a number for
	// int/float, a "YYYY-MM-DD" string for date.
	Strict     *bool    `json:"strict,omitempty"`
	MultipleOf *float64 `json:"multiple_of,omitempty"`
	Le         any      `json:"le,omitempty"`
	Ge         any      `json:"ge,omitempty"`
	Lt         any      `json:"lt,omitempty"`
	Gt         any      `json:"gt,omitempty"`

	// str-only.
	Pattern         *string `json:"pattern,omitempty"`
	MaxLength       *int    `json:"max_length,omitempty"`
	MinLength       *int    `json:"min_length,omitempty"`
	StripWhitespace bool    `json:"strip_whitespace,omitempty"`
	ToLower         bool    `json:"to_lower,omitempty"`
	ToUpper         bool    `json:"to_upper,omitempty"`

	// literal-only.
	Expected []any `json:"expected,omitempty"`

	// list/set/dict container fields, spec.md §4.4.
	Items    *Schema `json:"items,omitempty"`
	Keys     *Schema `json:"keys,omitempty"`
	Values   *Schema `json:"values,omitempty"`
	MinItems *int    `json:"min_items,omitempty"`
	MaxItems *int    `json:"max_items,omitempty"`

	// optional's inner schema, and also the wrapped inner schema for
	// function-before/after/wrap nodes and the body of a
	// recursive-container (§11 supplemented feature: one "function"
	// discriminator distinguished by Mode, sharing this slot rather than
	// inventing a second field name for the same shape). function-plain
	// takes no inner schema.
	Inner *Schema `json:"schema,omitempty"`

	// union-only.
	Choices []*Schema `json:"choices,omitempty"`

	// record ("model") fields, spec.md §4.5.
	Fields         map[string]*FieldSpec `json:"fields,omitempty"`
	Name           string                `json:"name,omitempty"`
	ExtraValidator *Schema               `json:"extra_validator,omitempty"`
	Config         *ConfigSchema         `json:"config,omitempty"`
	ClassName      string                `json:"class_type,omitempty"`

	// function-only, spec.md §4.6.
	Mode     string `json:"mode,omitempty"`
	Function string `json:"function,omitempty"`

	// recursive-container / recursive-ref, spec.md §9.
	RecursiveName string `json:"ref_name,omitempty"`
}

// ConfigSchema overlays per-record behavior that cascades to descendant
// leaves unless locally overridden (spec.md §4.5, §11 supplemented
// strict inheritance).
type ConfigSchema struct {
	Strict       *bool  `json:"strict,omitempty"`
	Extra        string `json:"extra,omitempty"` // "allow" | "forbid" | "ignore"
	StrMaxLength *int   `json:"str_max_length,omitempty"`
}

// FieldSpec describes one record field: its schema, optional default
// (inserted without validation, spec.md §4.5), and optional alias
// consulted before the field name during lookup.
type FieldSpec struct {
	Schema     *Schema `json:"schema"`
	Default    any     `json:"default,omitempty"`
	HasDefault bool    `json:"-"`
	Alias      string  `json:"alias,omitempty"`
}

// UnmarshalJSON supports the bare-string sugar from spec.md §3:
// a schema field may be the string "str" instead of {"type": "str"}.
func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var bare string
		if err := json.Unmarshal(data, &bare); err != nil {
			return err
		}
		*s = Schema{Type: bare}
		return nil
	}

	type Alias Schema
	aux := (*Alias)(s)
	return json.Unmarshal(data, aux)
}

// MarshalJSON implements the Pickleable contract's deterministic
// round-trip (spec.md §6): schema documents marshal with stable key
// ordering.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type Alias Schema
	return json.Marshal((*Alias)(s), json.Deterministic(true))
}

// UnmarshalJSON on FieldSpec records whether "default" was present at
// all, since a present-but-nil default is a real default value
// (spec.md §4.5: default insertion happens whenever a default was
// declared, including an explicit null).
func (f *FieldSpec) UnmarshalJSON(data []byte) error {
	type Alias FieldSpec
	aux := (*Alias)(f)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var probe map[string]jsontext.Value
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, ok := probe["default"]; ok {
		f.HasDefault = true
	}
	return nil
}
