package validum

import (
	"fmt"
	"regexp"
)

// Compiler is the Schema Compiler entry point, spec.md §4.6: it holds
// the function registry (schema documents name callbacks by string) and
// a regex cache, then turns a Schema tree into an immutable Node graph.
type Compiler struct {
	funcs   map[string]any
	regexes map[string]*regexp.Regexp
}

// NewCompiler returns an empty Compiler.
func NewCompiler() *Compiler {
	return &Compiler{
		funcs:   make(map[string]any),
		regexes: make(map[string]*regexp.Regexp),
	}
}

// RegisterFunction binds name to fn, one of FuncBefore, FuncAfter,
// FuncPlain, or FuncWrap. Schema documents reference it by name since
// neither JSON nor YAML can embed a Go closure.
func (c *Compiler) RegisterFunction(name string, fn any) {
	c.funcs[name] = fn
}

func (c *Compiler) compileRegex(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.regexes[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, pattern, err)
	}
	c.regexes[pattern] = re
	return re, nil
}

// configOverlay is the per-record string config that cascades into
// descendant leaves at compile time, spec.md §4.5/§11 supplemented
// strict-inheritance feature.
type configOverlay struct {
	strict       *bool
	extra        string
	strMaxLength *int
}

func (c configOverlay) resolveStrict(local *bool) bool {
	if local != nil {
		return *local
	}
	if c.strict != nil {
		return *c.strict
	}
	return false
}

// buildCtx threads compiler state through one Build call: the function
// registry/regex cache, the lexical recursion stack, and the innermost
// record's config overlay.
type buildCtx struct {
	compiler *Compiler
	stack    resolverStack
	cfg      configOverlay
}

// Build compiles schema into an immutable Validator, spec.md §4.6.
func (c *Compiler) Build(schema *Schema) (*Validator, error) {
	return c.BuildTitled(schema, "")
}

// BuildTitled compiles schema, using title in the top-level error
// report header (spec.md §6).
func (c *Compiler) BuildTitled(schema *Schema, title string) (*Validator, error) {
	ctx := &buildCtx{compiler: c}
	root, err := ctx.build(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
	}
	if title == "" {
		title = schema.Type
	}
	return &Validator{root: root, schema: schema, title: title}, nil
}

func (ctx *buildCtx) build(schema *Schema) (Node, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrMissingField)
	}

	switch schema.Type {
	case "any":
		return anyNode{}, nil
	case "none":
		return noneNode{}, nil
	case "bool":
		return &boolNode{strict: ctx.cfg.resolveStrict(schema.Strict)}, nil
	case "int":
		return ctx.buildInt(schema)
	case "float":
		return ctx.buildFloat(schema)
	case "str", "str-constrained":
		return ctx.buildString(schema)
	case "date":
		return ctx.buildDate(schema)
	case "literal":
		if len(schema.Expected) == 0 {
			return nil, fmt.Errorf("%w: literal.expected", ErrMissingField)
		}
		return &literalNode{expected: schema.Expected}, nil
	case "list":
		return ctx.buildList(schema)
	case "set":
		return ctx.buildSet(schema)
	case "dict":
		return ctx.buildDict(schema)
	case "optional":
		if schema.Inner == nil {
			return nil, fmt.Errorf("%w: optional.schema", ErrMissingField)
		}
		inner, err := ctx.build(schema.Inner)
		if err != nil {
			return nil, err
		}
		return &optionalNode{inner: inner, strict: ctx.cfg.resolveStrict(schema.Strict)}, nil
	case "union":
		return ctx.buildUnion(schema)
	case "model", "record", "typed-dict":
		return ctx.buildRecord(schema)
	case "function-before", "function-after", "function-plain", "function-wrap", "function":
		return ctx.buildFunction(schema)
	case "recursive-container":
		return ctx.buildRecursiveContainer(schema)
	case "recursive-ref":
		return resolveRecursiveRef(ctx.stack, schema.RecursiveName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaType, schema.Type)
	}
}

func numericBound(v any) (*Rat, error) {
	if v == nil {
		return nil, nil
	}
	r, err := convertToBigRat(v)
	if err != nil {
		return nil, err
	}
	return &Rat{r}, nil
}

func checkBoundConflict(le, ge, lt, gt *Rat) error {
	if le != nil && ge != nil && le.Cmp(ge.Rat) < 0 {
		return ErrBoundConflict
	}
	if lt != nil && gt != nil && lt.Cmp(gt.Rat) <= 0 {
		return ErrBoundConflict
	}
	return nil
}

func (ctx *buildCtx) buildInt(schema *Schema) (Node, error) {
	le, err := numericBound(schema.Le)
	if err != nil {
		return nil, err
	}
	ge, err := numericBound(schema.Ge)
	if err != nil {
		return nil, err
	}
	lt, err := numericBound(schema.Lt)
	if err != nil {
		return nil, err
	}
	gt, err := numericBound(schema.Gt)
	if err != nil {
		return nil, err
	}
	if err := checkBoundConflict(le, ge, lt, gt); err != nil {
		return nil, err
	}
	var multipleOf *Rat
	if schema.MultipleOf != nil {
		multipleOf = NewRat(*schema.MultipleOf)
	}
	return &intNode{
		strict:     ctx.cfg.resolveStrict(schema.Strict),
		multipleOf: multipleOf,
		le:         le, ge: ge, lt: lt, gt: gt,
	}, nil
}

func (ctx *buildCtx) buildFloat(schema *Schema) (Node, error) {
	le, err := numericBound(schema.Le)
	if err != nil {
		return nil, err
	}
	ge, err := numericBound(schema.Ge)
	if err != nil {
		return nil, err
	}
	lt, err := numericBound(schema.Lt)
	if err != nil {
		return nil, err
	}
	gt, err := numericBound(schema.Gt)
	if err != nil {
		return nil, err
	}
	if err := checkBoundConflict(le, ge, lt, gt); err != nil {
		return nil, err
	}
	var multipleOf *Rat
	if schema.MultipleOf != nil {
		multipleOf = NewRat(*schema.MultipleOf)
	}
	return &floatNode{
		strict:     ctx.cfg.resolveStrict(schema.Strict),
		multipleOf: multipleOf,
		le:         le, ge: ge, lt: lt, gt: gt,
	}, nil
}

func (ctx *buildCtx) buildString(schema *Schema) (Node, error) {
	maxLength := schema.MaxLength
	if maxLength == nil {
		maxLength = ctx.cfg.strMaxLength
	}
	n := &stringNode{
		strict:          ctx.cfg.resolveStrict(schema.Strict),
		maxLength:       maxLength,
		minLength:       schema.MinLength,
		stripWhitespace: schema.StripWhitespace,
		toLower:         schema.ToLower,
		toUpper:         schema.ToUpper,
	}
	if schema.Pattern != nil {
		re, err := ctx.compiler.compileRegex(*schema.Pattern)
		if err != nil {
			return nil, err
		}
		n.pattern = re
		n.patternSrc = *schema.Pattern
	}
	return n, nil
}

func dateBound(v any) (*Date, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: date bound must be a string", ErrUnsupportedTypeForRat)
	}
	d, ok := parseISODate(s)
	if !ok {
		return nil, fmt.Errorf("%w: invalid date bound %q", ErrUnsupportedTypeForRat, s)
	}
	return &d, nil
}

func (ctx *buildCtx) buildDate(schema *Schema) (Node, error) {
	le, err := dateBound(schema.Le)
	if err != nil {
		return nil, err
	}
	ge, err := dateBound(schema.Ge)
	if err != nil {
		return nil, err
	}
	lt, err := dateBound(schema.Lt)
	if err != nil {
		return nil, err
	}
	gt, err := dateBound(schema.Gt)
	if err != nil {
		return nil, err
	}
	if le != nil && ge != nil && le.Compare(*ge) < 0 {
		return nil, ErrBoundConflict
	}
	if lt != nil && gt != nil && lt.Compare(*gt) <= 0 {
		return nil, ErrBoundConflict
	}
	return &dateNode{strict: ctx.cfg.resolveStrict(schema.Strict), le: le, ge: ge, lt: lt, gt: gt}, nil
}

func (ctx *buildCtx) buildList(schema *Schema) (Node, error) {
	if schema.Items == nil {
		return nil, fmt.Errorf("%w: list.items", ErrMissingField)
	}
	items, err := ctx.build(schema.Items)
	if err != nil {
		return nil, err
	}
	return &listNode{items: items, minItems: schema.MinItems, maxItems: schema.MaxItems, strict: ctx.cfg.resolveStrict(schema.Strict)}, nil
}

func (ctx *buildCtx) buildSet(schema *Schema) (Node, error) {
	if schema.Items == nil {
		return nil, fmt.Errorf("%w: set.items", ErrMissingField)
	}
	items, err := ctx.build(schema.Items)
	if err != nil {
		return nil, err
	}
	return &setNode{items: items, minItems: schema.MinItems, maxItems: schema.MaxItems, strict: ctx.cfg.resolveStrict(schema.Strict)}, nil
}

func (ctx *buildCtx) buildDict(schema *Schema) (Node, error) {
	if schema.Keys == nil || schema.Values == nil {
		return nil, fmt.Errorf("%w: dict.keys/dict.values", ErrMissingField)
	}
	keys, err := ctx.build(schema.Keys)
	if err != nil {
		return nil, err
	}
	values, err := ctx.build(schema.Values)
	if err != nil {
		return nil, err
	}
	return &dictNode{keys: keys, values: values, minItems: schema.MinItems, maxItems: schema.MaxItems}, nil
}

func (ctx *buildCtx) buildRecord(schema *Schema) (Node, error) {
	if len(schema.Fields) == 0 {
		return nil, fmt.Errorf("%w: model.fields", ErrMissingField)
	}

	childCfg := ctx.cfg
	extraPolicy := "ignore"
	if schema.Config != nil {
		if schema.Config.Strict != nil {
			childCfg.strict = schema.Config.Strict
		}
		if schema.Config.StrMaxLength != nil {
			childCfg.strMaxLength = schema.Config.StrMaxLength
		}
		switch schema.Config.Extra {
		case "":
		case "allow", "forbid", "ignore":
			extraPolicy = schema.Config.Extra
		default:
			return nil, fmt.Errorf("%w: extra %q", ErrInvalidConfig, schema.Config.Extra)
		}
	}
	childCtx := &buildCtx{compiler: ctx.compiler, stack: ctx.stack, cfg: childCfg}

	names := sortedFieldNames(schema.Fields)
	fields := make([]recordField, 0, len(names))
	for _, name := range names {
		spec := schema.Fields[name]
		if spec == nil || spec.Schema == nil {
			return nil, fmt.Errorf("%w: fields.%s.schema", ErrMissingField, name)
		}
		node, err := childCtx.build(spec.Schema)
		if err != nil {
			return nil, err
		}
		fields = append(fields, recordField{
			name:       name,
			node:       node,
			alias:      spec.Alias,
			hasDefault: spec.HasDefault,
			def:        spec.Default,
		})
	}

	var extraValidator Node
	if schema.ExtraValidator != nil {
		built, err := childCtx.build(schema.ExtraValidator)
		if err != nil {
			return nil, err
		}
		extraValidator = built
	}

	title := schema.Name
	if title == "" {
		title = schema.ClassName
	}
	return &recordNode{title: title, fields: fields, extraPolicy: extraPolicy, extraValidator: extraValidator}, nil
}

// unionChoiceKind classifies a choice schema's declared type tag into
// the natural ValueKind smart-mode union dispatch compares against the
// input's Kind(), spec.md §4.4.
func unionChoiceKind(schema *Schema) (ValueKind, bool) {
	switch schema.Type {
	case "bool":
		return KindValBool, true
	case "int":
		return KindValInt, true
	case "float":
		return KindValFloat, true
	case "str", "str-constrained":
		return KindValString, true
	case "list", "set":
		return KindValSequence, true
	case "dict", "model", "record", "typed-dict":
		return KindValMapping, true
	case "none":
		return KindValNull, true
	default:
		return "", false
	}
}

func (ctx *buildCtx) buildUnion(schema *Schema) (Node, error) {
	if len(schema.Choices) == 0 {
		return nil, fmt.Errorf("%w: union.choices", ErrMissingField)
	}
	choices := make([]unionChoice, 0, len(schema.Choices))
	for _, c := range schema.Choices {
		node, err := ctx.build(c)
		if err != nil {
			return nil, err
		}
		kind, hasKind := unionChoiceKind(c)
		choices = append(choices, unionChoice{node: node, kind: kind, hasKind: hasKind})
	}
	return &unionNode{choices: choices, strict: ctx.cfg.resolveStrict(schema.Strict)}, nil
}

func (ctx *buildCtx) buildFunction(schema *Schema) (Node, error) {
	fn, ok := ctx.compiler.funcs[schema.Function]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, schema.Function)
	}

	mode := schema.Mode
	if schema.Type != "function" {
		// supplemented-feature alias: a bare "function-before" etc.
		// discriminator sets its own mode directly.
		mode = schema.Type[len("function-"):]
	}

	var inner Node
	if schema.Inner != nil {
		built, err := ctx.build(schema.Inner)
		if err != nil {
			return nil, err
		}
		inner = built
	}

	switch mode {
	case "before":
		if _, ok := fn.(FuncBefore); !ok {
			return nil, fmt.Errorf("%w: %s is not a FuncBefore", ErrUnknownFunction, schema.Function)
		}
	case "after":
		if _, ok := fn.(FuncAfter); !ok {
			return nil, fmt.Errorf("%w: %s is not a FuncAfter", ErrUnknownFunction, schema.Function)
		}
	case "plain":
		if _, ok := fn.(FuncPlain); !ok {
			return nil, fmt.Errorf("%w: %s is not a FuncPlain", ErrUnknownFunction, schema.Function)
		}
	case "wrap":
		if _, ok := fn.(FuncWrap); !ok {
			return nil, fmt.Errorf("%w: %s is not a FuncWrap", ErrUnknownFunction, schema.Function)
		}
	default:
		return nil, fmt.Errorf("%w: unknown function mode %q", ErrUnknownSchemaType, mode)
	}

	return &functionNode{mode: mode, name: schema.Function, fn: fn, inner: inner}, nil
}

func (ctx *buildCtx) buildRecursiveContainer(schema *Schema) (Node, error) {
	if schema.Name == "" || schema.Inner == nil {
		return nil, fmt.Errorf("%w: recursive-container.name/schema", ErrMissingField)
	}
	if _, dup := ctx.stack.find(schema.Name); dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRecursionName, schema.Name)
	}
	if hasTransparentCycle(schema.Inner, schema.Name, map[*Schema]bool{}) {
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, schema.Name)
	}

	slot := &recursiveSlot{name: schema.Name}
	ctx.stack.push(slot)
	inner, err := ctx.build(schema.Inner)
	ctx.stack.pop()
	if err != nil {
		return nil, err
	}
	slot.node = inner
	return slot, nil
}
