package validum

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Validator is the compiled, immutable form of a Schema, spec.md §6 Top-
// Level Validator. It is safe for concurrent use: Validate/ValidateJSON
// allocate a fresh ErrorList per call and never mutate the node graph.
type Validator struct {
	root   Node
	schema *Schema
	title  string
}

// Validate runs input (a native Go value: map[string]any, []any, string,
// float64, bool, nil, or already-typed values such as int/time-shaped
// structs) through the compiled graph in lax mode.
func (v *Validator) Validate(input any) (any, error) {
	return v.validate(NewNativeView(input), false)
}

// ValidateStrict is Validate with strict mode forced on for every node;
// a node's own "strict": false does not relax it.
func (v *Validator) ValidateStrict(input any) (any, error) {
	return v.validate(NewNativeView(input), true)
}

// ValidateJSON parses data as JSON text and validates it, preserving
// object key order and raw numeric text during coercion (spec.md §4.1:
// the text View backing, not a decode-into-map("any") round trip).
func (v *Validator) ValidateJSON(data []byte) (any, error) {
	view, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v.validate(view, false)
}

// ValidateJSONStrict is ValidateJSON with strict mode forced on at the
// root.
func (v *Validator) ValidateJSONStrict(data []byte) (any, error) {
	view, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v.validate(view, true)
}

func (v *Validator) validate(view View, strict bool) (any, error) {
	errs := NewErrorList()
	out, ok := v.root.Validate(view, Loc{}, strict, errs)
	if !ok || !errs.Empty() {
		return nil, newValidationError(v.title, errs)
	}
	return out, nil
}

// Assign applies a no-revalidation partial update to an already-
// validated record: every field of existing except field is copied
// unchanged, and only field is freshly validated against value (spec.md
// §4.5 Assign). It fails with ErrNotARecord if the compiled root isn't a
// record validator.
func (v *Validator) Assign(existing map[string]any, field string, value any) (map[string]any, error) {
	assigner, ok := v.root.(Assigner)
	if !ok {
		return nil, ErrNotARecord
	}
	errs := NewErrorList()
	out, ok := assigner.Assign(existing, field, NewNativeView(value), false, errs)
	if !ok || !errs.Empty() {
		return nil, newValidationError(v.title, errs)
	}
	return out, nil
}

// Repr returns the compiled graph's structural representation, used by
// the Pickleable contract's round-trip invariant (spec.md §8:
// `S.repr()` = `deserialize(serialize(S)).repr()`).
func (v *Validator) Repr() string {
	return v.title + ": " + v.root.Repr()
}

// Title returns the validator's report header name (spec.md §6).
func (v *Validator) Title() string { return v.title }

// Schema returns the original Schema document this Validator was built
// from, for the Pickleable serialize side (spec.md §6).
func (v *Validator) Schema() *Schema { return v.schema }

// MarshalJSON serializes the original schema, not the compiled graph —
// the Pickleable contract is "schema + title", re-buildable with
// Compiler.BuildTitled (spec.md §6).
func (v *Validator) MarshalJSON() ([]byte, error) {
	doc := struct {
		Title  string  `json:"title"`
		Schema *Schema `json:"schema"`
	}{Title: v.title, Schema: v.schema}
	return json.Marshal(doc, json.Deterministic(true))
}

// CompileJSON deserializes a document produced by Validator.MarshalJSON
// and rebuilds it with compiler, completing the Pickleable round trip
// (spec.md §6, §8: `S.repr()` = `deserialize(serialize(S)).repr()`).
func CompileJSON(compiler *Compiler, data []byte) (*Validator, error) {
	var doc struct {
		Title  string  `json:"title"`
		Schema *Schema `json:"schema"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid validator document: %w", err)
	}
	return compiler.BuildTitled(doc.Schema, doc.Title)
}
