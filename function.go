package validum

import "fmt"

// Function callback shapes a Compiler.RegisterFunction caller supplies.
// A schema document names a function by string (schema documents can't
// embed a Go closure), spec.md §4.5 "Function wrappers" — resolved at
// compile time via the Compiler's name registry.
type (
	// FuncBefore transforms the raw input before the inner validator runs.
	FuncBefore func(raw any) (any, error)
	// FuncAfter transforms the inner validator's output.
	FuncAfter func(value any) (any, error)
	// FuncPlain is the sole validator; there is no inner schema.
	FuncPlain func(raw any) (any, error)
	// FuncWrap receives the raw input and a callInner handle, and decides
	// when (or whether) to invoke the inner validator.
	FuncWrap func(raw any, callInner func(any) (any, error)) (any, error)
)

// functionNode wraps a registered callback around an optional inner
// validator, spec.md §4.5.
type functionNode struct {
	mode  string // "before" | "after" | "plain" | "wrap"
	name  string
	fn    any
	inner Node
}

// innerValidationFailure lets a wrap callback's callInner report the
// inner validator's own LineErrors back out through functionNode without
// collapsing them into a single function_error.
type innerValidationFailure struct {
	list *ErrorList
}

func (e *innerValidationFailure) Error() string { return "inner validation failed" }

func (n *functionNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	switch n.mode {
	case "before":
		before := n.fn.(FuncBefore)
		v, err := before(view.Raw())
		if err != nil {
			errs.Add(n.funcError(loc, view, err))
			return nil, false
		}
		return n.inner.Validate(NewNativeView(v), loc, strict, errs)

	case "after":
		v, ok := n.inner.Validate(view, loc, strict, errs)
		if !ok {
			return nil, false
		}
		after := n.fn.(FuncAfter)
		v2, err := after(v)
		if err != nil {
			errs.Add(n.funcError(loc, view, err))
			return nil, false
		}
		return v2, true

	case "plain":
		plain := n.fn.(FuncPlain)
		v, err := plain(view.Raw())
		if err != nil {
			errs.Add(n.funcError(loc, view, err))
			return nil, false
		}
		return v, true

	case "wrap":
		wrap := n.fn.(FuncWrap)
		callInner := func(v any) (any, error) {
			scratch := NewErrorList()
			out, ok := n.inner.Validate(NewNativeView(v), loc, strict, scratch)
			if !ok {
				return nil, &innerValidationFailure{list: scratch}
			}
			return out, nil
		}
		v, err := wrap(view.Raw(), callInner)
		if err != nil {
			if ivf, ok := err.(*innerValidationFailure); ok {
				errs.Extend(ivf.list)
				return nil, false
			}
			errs.Add(n.funcError(loc, view, err))
			return nil, false
		}
		return v, true

	default:
		errs.Add(n.funcError(loc, view, fmt.Errorf("unknown function mode %q", n.mode)))
		return nil, false
	}
}

func (n *functionNode) funcError(loc Loc, view View, err error) *LineError {
	return newLineError(KindFunctionError, loc, view, map[string]any{"detail": err.Error()})
}

func (n *functionNode) Repr() string {
	if n.inner != nil {
		return "function-" + n.mode + "(" + n.name + ", " + n.inner.Repr() + ")"
	}
	return "function-" + n.mode + "(" + n.name + ")"
}
