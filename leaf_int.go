package validum

// intNode validates/coerces an int leaf with exact rational bound
// checks, spec.md §4.1/§4.3. Bound fields are nil when unset.
type intNode struct {
	strict     bool
	multipleOf *Rat
	le, ge     *Rat
	lt, gt     *Rat
}

func (n *intNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	v, kind, ok := view.AsInt(strict || n.strict)
	if !ok {
		errs.Add(newLineError(kind, loc, view, nil))
		return nil, false
	}

	good := true
	if n.multipleOf != nil && !isMultipleOfInt(v, n.multipleOf) {
		errs.Add(newLineError(KindMultipleOf, loc, view, map[string]any{"multiple_of": FormatRat(n.multipleOf)}))
		good = false
	}
	if n.ge != nil && cmpInt(v, n.ge) < 0 {
		errs.Add(newLineError(KindGreaterThanEq, loc, view, map[string]any{"ge": FormatRat(n.ge)}))
		good = false
	}
	if n.gt != nil && cmpInt(v, n.gt) <= 0 {
		errs.Add(newLineError(KindGreaterThan, loc, view, map[string]any{"gt": FormatRat(n.gt)}))
		good = false
	}
	if n.le != nil && cmpInt(v, n.le) > 0 {
		errs.Add(newLineError(KindLessThanEqual, loc, view, map[string]any{"le": FormatRat(n.le)}))
		good = false
	}
	if n.lt != nil && cmpInt(v, n.lt) >= 0 {
		errs.Add(newLineError(KindLessThan, loc, view, map[string]any{"lt": FormatRat(n.lt)}))
		good = false
	}
	if !good {
		return nil, false
	}
	return v, true
}

func (n *intNode) Repr() string { return "int" }
