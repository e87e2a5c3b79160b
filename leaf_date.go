package validum

// dateNode validates/coerces a date leaf, spec.md §4.1/§4.3: bound
// comparisons use date-only ordering (no time-of-day, no timezone).
type dateNode struct {
	strict bool
	le, ge *Date
	lt, gt *Date
}

func (n *dateNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	v, kind, ok := view.AsDate(strict || n.strict)
	if !ok {
		errs.Add(newLineError(kind, loc, view, nil))
		return nil, false
	}

	good := true
	if n.ge != nil && v.Compare(*n.ge) < 0 {
		errs.Add(newLineError(KindGreaterThanEq, loc, view, map[string]any{"ge": n.ge.String()}))
		good = false
	}
	if n.gt != nil && v.Compare(*n.gt) <= 0 {
		errs.Add(newLineError(KindGreaterThan, loc, view, map[string]any{"gt": n.gt.String()}))
		good = false
	}
	if n.le != nil && v.Compare(*n.le) > 0 {
		errs.Add(newLineError(KindLessThanEqual, loc, view, map[string]any{"le": n.le.String()}))
		good = false
	}
	if n.lt != nil && v.Compare(*n.lt) >= 0 {
		errs.Add(newLineError(KindLessThan, loc, view, map[string]any{"lt": n.lt.String()}))
		good = false
	}
	if !good {
		return nil, false
	}
	return v, true
}

func (n *dateNode) Repr() string { return "date" }
