package validum

import "errors"

// === Schema compilation errors ===
// These surface from Compiler.Build / Compiler.BuildYAML and never reach
// a validate call — spec.md §7 treats build-time failure as a distinct
// category from a run-time ValidationError.
var (
	// ErrSchemaCompilation wraps the underlying cause of a failed build.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrUnknownSchemaType is returned when a schema's type discriminator
	// is not one of the recognized kinds.
	ErrUnknownSchemaType = errors.New("unknown schema type")

	// ErrMissingField is returned when a required schema field (e.g.
	// "items" on a list schema, "choices" on a union) is absent.
	ErrMissingField = errors.New("missing required schema field")

	// ErrInvalidPattern is returned when a "pattern" field fails to
	// compile as a regular expression.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrBoundConflict is returned when le < ge or lt <= gt on a numeric
	// or date schema.
	ErrBoundConflict = errors.New("numeric bound constraints conflict")

	// ErrRecursionUnresolved is returned when a recursive-ref names no
	// lexically enclosing recursive-container.
	ErrRecursionUnresolved = errors.New("recursion_error: unresolved name")

	// ErrCyclicReference is returned when a recursive-container's own name
	// is reached again through optional, union, recursive-container and
	// function-before/after/wrap nodes only, with no other node kind in
	// between; a union on that path is rejected even if another of its
	// choices is finite.
	ErrCyclicReference = errors.New("recursion_error: cyclic reference detected")

	// ErrDuplicateRecursionName is returned when a recursive-container
	// reuses the name of a recursive-container that encloses it; sibling
	// containers with the same name are accepted.
	ErrDuplicateRecursionName = errors.New("duplicate recursive-container name")

	// ErrUnknownFunction is returned when a function schema names a
	// callback that was never registered with the Compiler.
	ErrUnknownFunction = errors.New("unknown registered function")

	// ErrInvalidConfig is returned for a malformed record "config" overlay
	// (an extra policy other than "allow", "forbid" or "ignore").
	ErrInvalidConfig = errors.New("invalid record config")

	// ErrNotARecord is returned by Validator.Assign when the compiled
	// root node is not a record validator.
	ErrNotARecord = errors.New("assign: root validator is not a record")

	// ErrUnsupportedTypeForRat is returned when a numeric bound
	// constraint's declared value is neither a number nor a string, and
	// when a date bound is not a valid "YYYY-MM-DD" string.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for exact rational bound")

	// ErrFailedToConvertToRat is returned when a numeric bound
	// constraint's declared value cannot be parsed as a decimal number.
	ErrFailedToConvertToRat = errors.New("failed to convert value to exact rational bound")
)

// Kind is the closed set of run-time validation error tags from spec.md
// §7. Every Kind has exactly one canonical i18n message key of the same
// name.
type Kind string

const (
	KindBoolType        Kind = "bool_type"
	KindBoolParsing     Kind = "bool_parsing"
	KindIntType         Kind = "int_type"
	KindIntParsing      Kind = "int_parsing"
	KindIntFromFloat    Kind = "int_from_float"
	KindFloatType       Kind = "float_type"
	KindFloatParsing    Kind = "float_parsing"
	KindStrType         Kind = "str_type"
	KindStrTooShort     Kind = "str_too_short"
	KindStrTooLong      Kind = "str_too_long"
	KindStrPattern      Kind = "str_pattern_mismatch"
	KindDateType        Kind = "date_type"
	KindDateParsing     Kind = "date_parsing"
	KindLessThan        Kind = "less_than"
	KindLessThanEqual   Kind = "less_than_equal"
	KindGreaterThan     Kind = "greater_than"
	KindGreaterThanEq   Kind = "greater_than_equal"
	KindMultipleOf      Kind = "multiple_of"
	KindMissing         Kind = "missing"
	KindExtraForbidden  Kind = "extra_forbidden"
	KindDictType        Kind = "dict_type"
	KindListType        Kind = "list_type"
	KindSetType         Kind = "set_type"
	KindLiteralError    Kind = "literal_error"
	KindUnionTagNotFnd  Kind = "union_tag_not_found"
	KindRecursionError  Kind = "recursion_error"
	KindFunctionError   Kind = "function_error"
	KindNoneRequired    Kind = "none_required"
	KindBytesType       Kind = "bytes_type"
	KindTooManyItems    Kind = "too_many_items"
	KindTooFewItems     Kind = "too_few_items"
	KindTooManyEntries  Kind = "too_many_entries"
	KindTooFewEntries   Kind = "too_few_entries"
	KindAnyOfAllFailed  Kind = "union_all_choices_failed"
	KindInvalidKeyInDct Kind = "dict_key_invalid"
)
