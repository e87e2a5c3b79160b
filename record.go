package validum

// recordNode is the Record Validator, spec.md §4.5 — the composite node
// for named-field records (the schema dialect's "model" discriminator).
type recordNode struct {
	title          string
	fields         []recordField
	extraPolicy    string // "ignore" | "allow" | "forbid"
	extraValidator Node
}

func (n *recordNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	entries, ok := view.Entries()
	if !ok {
		errs.Add(newLineError(KindDictType, loc, view, nil))
		return nil, false
	}

	byKey := make(map[string]View, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}

	consumed := make(map[string]bool, len(entries))
	out := make(map[string]any, len(n.fields))
	set := make(map[string]struct{}, len(n.fields))
	good := true

	for _, f := range n.fields {
		var found View
		var foundKey string
		present := false

		if f.alias != "" {
			if v, ok := byKey[f.alias]; ok {
				found, foundKey, present = v, f.alias, true
			}
		}
		if !present {
			if v, ok := byKey[f.name]; ok {
				found, foundKey, present = v, f.name, true
			}
		}

		if present {
			consumed[foundKey] = true
			childLoc := loc.clone(NameSegment(f.name))
			v, vok := f.node.Validate(found, childLoc, strict, errs)
			if !vok {
				good = false
				continue
			}
			out[f.name] = v
			set[f.name] = struct{}{}
			continue
		}

		if f.hasDefault {
			out[f.name] = f.def
			continue
		}

		errs.Add(newLineError(KindMissing, loc.clone(NameSegment(f.name)), missingView{}, nil))
		good = false
	}

	for _, e := range entries {
		if consumed[e.Key] {
			continue
		}
		keyLoc := loc.clone(NameSegment(e.Key))
		switch n.extraPolicy {
		case "forbid":
			errs.Add(newLineError(KindExtraForbidden, keyLoc, e.Value, nil))
			good = false
		case "allow":
			if n.extraValidator != nil {
				v, vok := n.extraValidator.Validate(e.Value, keyLoc, strict, errs)
				if !vok {
					good = false
					continue
				}
				out[e.Key] = v
			} else {
				out[e.Key] = e.Value.Raw()
			}
			set[e.Key] = struct{}{}
		default: // "ignore"
		}
	}

	if !good {
		return nil, false
	}
	return &RecordValue{Fields: out, Set: set}, true
}

func (n *recordNode) Repr() string {
	name := n.title
	if name == "" {
		name = "record"
	}
	return name
}

// Assign implements spec.md §4.5's no-revalidation partial-update
// contract: only field is validated; every other entry of existing is
// copied unchanged.
func (n *recordNode) Assign(existing map[string]any, field string, value View, strict bool, errs *ErrorList) (map[string]any, bool) {
	for _, f := range n.fields {
		if f.name != field {
			continue
		}
		loc := Loc{NameSegment(field)}
		v, ok := f.node.Validate(value, loc, strict, errs)
		if !ok {
			return nil, false
		}
		out := make(map[string]any, len(existing))
		for k, ev := range existing {
			out[k] = ev
		}
		out[field] = v
		return out, true
	}

	// field is not a declared name: apply the record's extras policy.
	loc := Loc{NameSegment(field)}
	switch n.extraPolicy {
	case "forbid":
		errs.Add(newLineError(KindExtraForbidden, loc, value, nil))
		return nil, false
	case "allow":
		var v any = value.Raw()
		if n.extraValidator != nil {
			var ok bool
			v, ok = n.extraValidator.Validate(value, loc, strict, errs)
			if !ok {
				return nil, false
			}
		}
		out := make(map[string]any, len(existing)+1)
		for k, ev := range existing {
			out[k] = ev
		}
		out[field] = v
		return out, true
	default: // "ignore"
		out := make(map[string]any, len(existing))
		for k, ev := range existing {
			out[k] = ev
		}
		return out, true
	}
}
