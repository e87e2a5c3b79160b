package validum

// literalNode validates by equality against a fixed set of expected
// values, spec.md §4.3: first match wins, no coercion.
type literalNode struct {
	expected []any
}

func (n *literalNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	raw := view.Raw()
	for _, want := range n.expected {
		if literalEqual(raw, want) {
			return raw, true
		}
	}
	errs.Add(newLineError(KindLiteralError, loc, view, map[string]any{"expected": n.expected}))
	return nil, false
}

func (n *literalNode) Repr() string { return "literal" }

// literalEqual compares a raw input value against one expected literal.
// Numeric values compare across Go's various int/float representations
// (a native int64 and a JSON-decoded float64 carrying the same number
// are the same literal) but never across kinds (a number never equals
// a string or bool).
func literalEqual(a, b any) bool {
	switch bt := b.(type) {
	case bool:
		ab, ok := a.(bool)
		return ok && ab == bt
	case string:
		as, ok := a.(string)
		return ok && as == bt
	case nil:
		return a == nil
	default:
		af, aok := asFloat64(a)
		bf, bok := asFloat64(b)
		if aok && bok {
			return af == bf
		}
		return deepEqual(a, b)
	}
}
