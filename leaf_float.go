package validum

// floatNode validates/coerces a float leaf with exact rational bound
// checks, spec.md §4.1/§4.3. Bound fields are nil when unset.
type floatNode struct {
	strict     bool
	multipleOf *Rat
	le, ge     *Rat
	lt, gt     *Rat
}

func (n *floatNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	v, kind, ok := view.AsFloat(strict || n.strict)
	if !ok {
		errs.Add(newLineError(kind, loc, view, nil))
		return nil, false
	}

	good := true
	if n.multipleOf != nil && !isMultipleOfFloat(v, n.multipleOf) {
		errs.Add(newLineError(KindMultipleOf, loc, view, map[string]any{"multiple_of": FormatRat(n.multipleOf)}))
		good = false
	}
	if n.ge != nil && cmpFloat(v, n.ge) < 0 {
		errs.Add(newLineError(KindGreaterThanEq, loc, view, map[string]any{"ge": FormatRat(n.ge)}))
		good = false
	}
	if n.gt != nil && cmpFloat(v, n.gt) <= 0 {
		errs.Add(newLineError(KindGreaterThan, loc, view, map[string]any{"gt": FormatRat(n.gt)}))
		good = false
	}
	if n.le != nil && cmpFloat(v, n.le) > 0 {
		errs.Add(newLineError(KindLessThanEqual, loc, view, map[string]any{"le": FormatRat(n.le)}))
		good = false
	}
	if n.lt != nil && cmpFloat(v, n.lt) >= 0 {
		errs.Add(newLineError(KindLessThan, loc, view, map[string]any{"lt": FormatRat(n.lt)}))
		good = false
	}
	if !good {
		return nil, false
	}
	return v, true
}

func (n *floatNode) Repr() string { return "float" }
