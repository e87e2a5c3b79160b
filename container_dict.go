package validum

// dictNode validates a mapping entry-wise, spec.md §4.4: key via keys,
// value via values, path segment is the raw key, size bounds after
// traversal.
type dictNode struct {
	keys     Node
	values   Node
	minItems *int
	maxItems *int
}

func (n *dictNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	entries, ok := view.Entries()
	if !ok {
		errs.Add(newLineError(KindDictType, loc, view, nil))
		return nil, false
	}

	out := make(map[string]any, len(entries))
	good := true
	for _, e := range entries {
		childLoc := loc.clone(NameSegment(e.Key))
		if _, kok := n.keys.Validate(NewNativeView(e.Key), childLoc, strict, errs); !kok {
			good = false
			continue
		}
		v, vok := n.values.Validate(e.Value, childLoc, strict, errs)
		if !vok {
			good = false
			continue
		}
		out[e.Key] = v
	}
	if !good {
		return nil, false
	}

	if n.minItems != nil && len(out) < *n.minItems {
		errs.Add(newLineError(KindTooFewEntries, loc, view, map[string]any{"min_items": *n.minItems, "actual": len(out)}))
		good = false
	}
	if n.maxItems != nil && len(out) > *n.maxItems {
		errs.Add(newLineError(KindTooManyEntries, loc, view, map[string]any{"max_items": *n.maxItems, "actual": len(out)}))
		good = false
	}
	if !good {
		return nil, false
	}
	return out, true
}

func (n *dictNode) Repr() string { return "dict(" + n.keys.Repr() + ", " + n.values.Repr() + ")" }
