package validum

// boolNode validates/coerces a bool leaf, spec.md §4.1/§4.3.
type boolNode struct {
	strict bool
}

func (n *boolNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	v, kind, ok := view.AsBool(strict || n.strict)
	if !ok {
		errs.Add(newLineError(kind, loc, view, nil))
		return nil, false
	}
	return v, true
}

func (n *boolNode) Repr() string { return "bool" }
