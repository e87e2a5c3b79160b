package validum

import "fmt"

// unionChoice pairs a compiled child with the natural ValueKind its
// schema's type discriminator declares, if any (used by smart mode to
// prefer a matching choice before falling back to collect-all).
type unionChoice struct {
	node    Node
	kind    ValueKind
	hasKind bool
}

// unionNode implements spec.md §4.4 "smart mode" (default): the first
// choice whose declared type tag matches the input's natural kind is
// tried first; on failure, or when no choice declares a matching kind,
// every choice is tried in order and failures are collected under
// choice[<index>] sub-paths (spec.md §9 Open Question, resolved this
// way). In strict mode only kind-matching choices are considered at
// all.
type unionNode struct {
	choices []unionChoice
	strict  bool
}

func (n *unionNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	eff := strict || n.strict
	natural := view.Kind()

	preferred := -1
	anyKindMatch := false
	for i, c := range n.choices {
		if c.hasKind && c.kind == natural {
			anyKindMatch = true
			if preferred == -1 {
				preferred = i
			}
		}
	}

	if preferred != -1 {
		scratch := NewErrorList()
		if v, ok := n.choices[preferred].node.Validate(view, loc, eff, scratch); ok {
			return v, true
		}
	}

	if eff && !anyKindMatch {
		errs.Add(newLineError(KindUnionTagNotFnd, loc, view, nil))
		return nil, false
	}

	collected := NewErrorList()
	tried := false
	for i, c := range n.choices {
		if eff && !(c.hasKind && c.kind == natural) {
			continue
		}
		tried = true
		scratch := NewErrorList()
		if v, ok := c.node.Validate(view, loc, eff, scratch); ok {
			return v, true
		}
		sub := loc.clone(NameSegment(fmt.Sprintf("choice[%d]", i)))
		for _, e := range scratch.Errors() {
			suffix := e.Loc[len(loc):]
			rewritten := append(append(Loc{}, sub...), suffix...)
			e.Loc = rewritten
			collected.Add(e)
		}
	}

	if !tried {
		errs.Add(newLineError(KindUnionTagNotFnd, loc, view, nil))
		return nil, false
	}
	errs.Add(newLineError(KindAnyOfAllFailed, loc, view, nil))
	errs.Extend(collected)
	return nil, false
}

func (n *unionNode) Repr() string {
	s := "union("
	for i, c := range n.choices {
		if i > 0 {
			s += ", "
		}
		s += c.node.Repr()
	}
	return s + ")"
}
