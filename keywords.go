package validum

// Keyword is a functional option over a Schema, for building a schema
// document without hand-writing JSON (spec.md §3 sugar: schema trees
// are ordinary Go values, so helpers that mutate one in place compose
// naturally).
type Keyword func(*Schema)

// New builds a Schema of the given type discriminator with opts applied
// in order.
func New(typ string, opts ...Keyword) *Schema {
	s := &Schema{Type: typ}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Str builds a "str" (or "str-constrained" once a constraint opt is
// applied) schema.
func Str(opts ...Keyword) *Schema { return New("str", opts...) }

// Int builds an "int" schema.
func Int(opts ...Keyword) *Schema { return New("int", opts...) }

// Float builds a "float" schema.
func Float(opts ...Keyword) *Schema { return New("float", opts...) }

// Bool builds a "bool" schema.
func Bool(opts ...Keyword) *Schema { return New("bool", opts...) }

// None builds a "none" schema.
func None(opts ...Keyword) *Schema { return New("none", opts...) }

// Any builds an "any" schema.
func Any(opts ...Keyword) *Schema { return New("any", opts...) }

// DateSchema builds a "date" schema (named to avoid colliding with the
// Date value type).
func DateSchema(opts ...Keyword) *Schema { return New("date", opts...) }

// Literal builds a "literal" schema with the given expected values.
func Literal(values ...any) *Schema {
	return &Schema{Type: "literal", Expected: values}
}

// List builds a "list" schema over items.
func List(items *Schema, opts ...Keyword) *Schema {
	s := &Schema{Type: "list", Items: items}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set builds a "set" schema over items.
func Set(items *Schema, opts ...Keyword) *Schema {
	s := &Schema{Type: "set", Items: items}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dict builds a "dict" schema over keys/values.
func Dict(keys, values *Schema, opts ...Keyword) *Schema {
	s := &Schema{Type: "dict", Keys: keys, Values: values}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Optional wraps inner as an "optional" schema.
func Optional(inner *Schema) *Schema {
	return &Schema{Type: "optional", Inner: inner}
}

// Union builds a "union" schema over choices.
func Union(choices ...*Schema) *Schema {
	return &Schema{Type: "union", Choices: choices}
}

// Record builds a "record" schema with the given fields.
func Record(name string, fields map[string]*FieldSpec, opts ...Keyword) *Schema {
	s := &Schema{Type: "record", Name: name, Fields: fields}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Field builds a required FieldSpec, optionally aliased.
func Field(schema *Schema, alias ...string) *FieldSpec {
	f := &FieldSpec{Schema: schema}
	if len(alias) > 0 {
		f.Alias = alias[0]
	}
	return f
}

// FieldWithDefault builds a FieldSpec carrying a default value inserted
// without validation when the field is absent (spec.md §4.5).
func FieldWithDefault(schema *Schema, def any) *FieldSpec {
	return &FieldSpec{Schema: schema, Default: def, HasDefault: true}
}

// RecursiveContainer builds a "recursive-container" schema naming a
// scope that recursive-ref schemas inside inner may reference.
func RecursiveContainer(name string, inner *Schema) *Schema {
	return &Schema{Type: "recursive-container", Name: name, Inner: inner}
}

// RecursiveRef builds a "recursive-ref" schema naming an enclosing
// recursive-container.
func RecursiveRef(name string) *Schema {
	return &Schema{Type: "recursive-ref", RecursiveName: name}
}

// FunctionBefore/FunctionAfter/FunctionPlain/FunctionWrap build
// "function-*" schemas naming a callback registered with
// Compiler.RegisterFunction (spec.md §4.5 — schema documents can't embed
// Go closures, only the name that resolves to one at compile time).

func FunctionBefore(name string, inner *Schema) *Schema {
	return &Schema{Type: "function-before", Function: name, Inner: inner}
}

func FunctionAfter(name string, inner *Schema) *Schema {
	return &Schema{Type: "function-after", Function: name, Inner: inner}
}

func FunctionPlain(name string) *Schema {
	return &Schema{Type: "function-plain", Function: name}
}

func FunctionWrap(name string, inner *Schema) *Schema {
	return &Schema{Type: "function-wrap", Function: name, Inner: inner}
}

// === leaf constraint keywords ===

// Strict marks a schema as strict-only by setting its own "strict" field.
// It does not set a record's Config; WithConfig carries the record-wide
// strict setting.
func Strict() Keyword {
	return func(s *Schema) {
		t := true
		s.Strict = &t
	}
}

// Ge sets a greater-than-or-equal bound (a number for int/float, a
// "YYYY-MM-DD" string for date).
func Ge(bound any) Keyword { return func(s *Schema) { s.Ge = bound } }

// Gt sets a strict greater-than bound.
func Gt(bound any) Keyword { return func(s *Schema) { s.Gt = bound } }

// Le sets a less-than-or-equal bound.
func Le(bound any) Keyword { return func(s *Schema) { s.Le = bound } }

// Lt sets a strict less-than bound.
func Lt(bound any) Keyword { return func(s *Schema) { s.Lt = bound } }

// MultipleOf sets the multiple_of bound for int/float schemas.
func MultipleOf(m float64) Keyword {
	return func(s *Schema) { s.MultipleOf = &m }
}

// Pattern sets a string schema's regular expression constraint,
// switching its discriminator to "str-constrained" (spec.md §4.3: a
// bare "str" never carries constraint fields).
func Pattern(pattern string) Keyword {
	return func(s *Schema) {
		s.Pattern = &pattern
		s.Type = "str-constrained"
	}
}

// MinLen sets a string schema's minimum length constraint.
func MinLen(n int) Keyword {
	return func(s *Schema) {
		s.MinLength = &n
		s.Type = "str-constrained"
	}
}

// MaxLen sets a string schema's maximum length constraint.
func MaxLen(n int) Keyword {
	return func(s *Schema) {
		s.MaxLength = &n
		s.Type = "str-constrained"
	}
}

// StripWhitespace enables leading/trailing whitespace stripping.
func StripWhitespace() Keyword {
	return func(s *Schema) {
		s.StripWhitespace = true
		s.Type = "str-constrained"
	}
}

// ToLower lowercases the string after constraint checks.
func ToLower() Keyword {
	return func(s *Schema) {
		s.ToLower = true
		s.Type = "str-constrained"
	}
}

// ToUpper uppercases the string after constraint checks.
func ToUpper() Keyword {
	return func(s *Schema) {
		s.ToUpper = true
		s.Type = "str-constrained"
	}
}

// MinItems sets a list/set/dict schema's minimum element count.
func MinItems(n int) Keyword { return func(s *Schema) { s.MinItems = &n } }

// MaxItems sets a list/set/dict schema's maximum element count.
func MaxItems(n int) Keyword { return func(s *Schema) { s.MaxItems = &n } }

// WithConfig attaches a per-record config overlay to a record schema.
func WithConfig(cfg *ConfigSchema) Keyword {
	return func(s *Schema) { s.Config = cfg }
}

// WithExtraValidator attaches an extra-field validator to a record
// schema (used with Extra("allow")).
func WithExtraValidator(validator *Schema) Keyword {
	return func(s *Schema) { s.ExtraValidator = validator }
}

// Extra sets a record schema's extras policy in Config.Extra (creating
// Config if it is nil), one of "allow" | "forbid" | "ignore".
func Extra(policy string) Keyword {
	return func(s *Schema) {
		if s.Config == nil {
			s.Config = &ConfigSchema{}
		}
		s.Config.Extra = policy
	}
}

// ClassName sets a record schema's originating class/type name, carried
// through for diagnostics (spec.md §4.5).
func ClassName(name string) Keyword {
	return func(s *Schema) { s.ClassName = name }
}
