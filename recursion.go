package validum

import "fmt"

// recursiveSlot is the placeholder a recursive-container allocates
// during the discover pass (spec.md §4.6): every recursive-ref naming
// it resolves to this slot immediately, while the slot's own node is
// only filled in once the container's inner schema finishes building.
// Back-edges in the compiled graph are this indirection, not an owning
// pointer cycle.
type recursiveSlot struct {
	name string
	node Node
}

func (s *recursiveSlot) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	return s.node.Validate(view, loc, strict, errs)
}

func (s *recursiveSlot) Repr() string { return "recursive-container(" + s.name + ")" }

// recursiveRefNode is the compiled form of a recursive-ref: a thin
// forwarding wrapper over the slot its name resolved to.
type recursiveRefNode struct {
	slot *recursiveSlot
}

func (r *recursiveRefNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	return r.slot.node.Validate(view, loc, strict, errs)
}

func (r *recursiveRefNode) Repr() string { return "recursive-ref(" + r.slot.name + ")" }

// resolverStack is the lexical name→slot stack the discover pass
// maintains while walking into nested recursive-containers.
type resolverStack []*recursiveSlot

func (s *resolverStack) push(slot *recursiveSlot) { *s = append(*s, slot) }

func (s *resolverStack) pop() { *s = (*s)[:len(*s)-1] }

// find returns the nearest enclosing slot with the given name.
func (s resolverStack) find(name string) (*recursiveSlot, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].name == name {
			return s[i], true
		}
	}
	return nil, false
}

// hasTransparentCycle rejects a recursive-container whose inner schema
// can reach a recursive-ref back to itself without ever passing through
// a node that narrows into a child view (spec.md §4.6 cyclic reference
// detection).
//
// "Transparent" nodes (optional, union, recursive-container,
// function-before/after/wrap) re-validate the very same view they were
// given, so a path built entirely from them back to a self-ref would
// recurse forever on one call for any non-null input. "Narrowing" nodes
// (list/set/dict/record) always descend into a strictly smaller child
// view, and leaves terminate outright — either guarantees the
// recursion is bounded by the actual input's finite depth. This is a
// resolved Open Question (spec.md §9): §4.6's own worked example (a
// union whose only choice is optional wrapping a ref to itself) must be
// rejected, which a literal "optional nodes are always finite" reading
// would wrongly accept — see DESIGN.md.
func hasTransparentCycle(schema *Schema, selfName string, visiting map[*Schema]bool) bool {
	if schema == nil {
		return false
	}
	if visiting[schema] {
		return false
	}
	visiting[schema] = true
	defer delete(visiting, schema)

	switch schema.Type {
	case "recursive-ref":
		return schema.RecursiveName == selfName
	case "optional":
		return hasTransparentCycle(schema.Inner, selfName, visiting)
	case "union":
		for _, choice := range schema.Choices {
			if hasTransparentCycle(choice, selfName, visiting) {
				return true
			}
		}
		return false
	case "recursive-container":
		return hasTransparentCycle(schema.Inner, selfName, visiting)
	case "function-before", "function-after", "function-wrap":
		return hasTransparentCycle(schema.Inner, selfName, visiting)
	default:
		// list/set/dict/record/leaf types/function-plain all narrow into a
		// child view or terminate outright: safe.
		return false
	}
}

// resolveRecursiveRef looks up name in stack, producing a compile error
// if no lexically enclosing recursive-container declared it.
func resolveRecursiveRef(stack resolverStack, name string) (*recursiveRefNode, error) {
	slot, ok := stack.find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecursionUnresolved, name)
	}
	return &recursiveRefNode{slot: slot}, nil
}
