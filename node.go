package validum

// Node is the Validator Node Contract every compiled schema kind
// implements (spec.md §4 System Overview: "a schema compiles to an
// immutable graph of validator nodes"). It is an ordinary exported
// interface: any type with these methods satisfies it.
type Node interface {
	// Validate checks view against this node, returning the coerced
	// value as out and appending failures to errs at the current loc.
	// ok is false when this node or one of its descendants added a
	// failure. errs is shared along the walk, so it may already hold
	// errors from sibling nodes.
	Validate(view View, loc Loc, strict bool, errs *ErrorList) (out any, ok bool)

	// Repr renders a short, stable description of this node for
	// diagnostics and the Pickleable contract's debug text (spec.md §6).
	Repr() string
}

// Assigner is implemented by nodes that support partial re-validation of
// a single named field without re-validating the rest of the value
// (spec.md §4.5 Assignment operation — record nodes only).
type Assigner interface {
	Assign(existing map[string]any, field string, value View, strict bool, errs *ErrorList) (map[string]any, bool)
}
