package validum

import (
	"regexp"
	"strings"
)

// stringNode validates/coerces a str leaf with the fixed constraint
// order from spec.md §4.3: type/parse, pattern, max_length, min_length,
// strip_whitespace, then to_lower/to_upper.
type stringNode struct {
	strict          bool
	pattern         *regexp.Regexp
	patternSrc      string
	maxLength       *int
	minLength       *int
	stripWhitespace bool
	toLower         bool
	toUpper         bool
}

func (n *stringNode) Validate(view View, loc Loc, strict bool, errs *ErrorList) (any, bool) {
	v, kind, ok := view.AsString(strict || n.strict)
	if !ok {
		errs.Add(newLineError(kind, loc, view, nil))
		return nil, false
	}

	good := true
	if n.pattern != nil && !n.pattern.MatchString(v) {
		errs.Add(newLineError(KindStrPattern, loc, view, map[string]any{"pattern": n.patternSrc}))
		good = false
	}
	length := len([]rune(v))
	if n.maxLength != nil && length > *n.maxLength {
		errs.Add(newLineError(KindStrTooLong, loc, view, map[string]any{"max_length": *n.maxLength}))
		good = false
	}
	if n.minLength != nil && length < *n.minLength {
		errs.Add(newLineError(KindStrTooShort, loc, view, map[string]any{"min_length": *n.minLength}))
		good = false
	}
	if !good {
		return nil, false
	}

	if n.stripWhitespace {
		v = strings.TrimSpace(v)
	}
	switch {
	case n.toLower:
		v = strings.ToLower(v)
	case n.toUpper:
		v = strings.ToUpper(v)
	}
	return v, true
}

func (n *stringNode) Repr() string { return "str" }
