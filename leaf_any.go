package validum

// anyNode accepts every input unchanged, spec.md §4.3.
type anyNode struct{}

func (anyNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	return view.Raw(), true
}

func (anyNode) Repr() string { return "any" }
