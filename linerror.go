package validum

import (
	"embed"
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an initialized localization bundle with the embedded
// per-kind message templates.
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

var defaultLocalizer = mustDefaultLocalizer()

func mustDefaultLocalizer() *i18n.Localizer {
	bundle, err := I18n()
	if err != nil {
		// The embedded locale files ship with the module; failure here
		// means the module itself is broken, not a caller input error.
		panic(fmt.Sprintf("validum: embedded locale bundle failed to load: %v", err))
	}
	return bundle.NewLocalizer("en")
}

// LineError is a single validation failure at a specific location,
// spec.md §2/§6.
type LineError struct {
	Kind       Kind
	Loc        Loc
	InputValue any
	InputType  string
	Context    map[string]any
}

// Message renders the canonical English template for this error.
func (e *LineError) Message() string {
	return e.Localize(defaultLocalizer)
}

// Localize renders the template for this error's Kind through localizer,
// falling back to the English default if localizer is nil.
func (e *LineError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		localizer = defaultLocalizer
	}
	vars := make(map[string]any, len(e.Context))
	for k, v := range e.Context {
		vars[k] = v
	}
	return localizer.Get(string(e.Kind), i18n.Vars(vars))
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s | %s [kind=%s, input_value=%v, input_type=%s]",
		e.Loc.String(), e.Message(), e.Kind, truncate(e.InputValue), e.InputType)
}

func truncate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// newLineError builds a LineError, capturing the excerpt and kind tag of
// view for display purposes (spec.md §2: "offending input excerpt").
func newLineError(kind Kind, loc Loc, view View, ctx map[string]any) *LineError {
	return &LineError{
		Kind:       kind,
		Loc:        loc,
		InputValue: view.Raw(),
		InputType:  string(view.Kind()),
		Context:    ctx,
	}
}

// ErrorList accumulates LineErrors during a single validation call
// (spec.md §2, §5: per-call scratch, discarded on return).
type ErrorList struct {
	errs []*LineError
}

// NewErrorList returns an empty accumulator.
func NewErrorList() *ErrorList { return &ErrorList{} }

// Add appends a LineError.
func (l *ErrorList) Add(e *LineError) {
	l.errs = append(l.errs, e)
}

// Extend appends every error from other, if any.
func (l *ErrorList) Extend(other *ErrorList) {
	if other == nil {
		return
	}
	l.errs = append(l.errs, other.errs...)
}

// Len reports how many errors have accumulated.
func (l *ErrorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.errs)
}

// Empty reports whether no errors have accumulated.
func (l *ErrorList) Empty() bool { return l.Len() == 0 }

// Errors returns the accumulated LineErrors in accumulation order.
func (l *ErrorList) Errors() []*LineError {
	if l == nil {
		return nil
	}
	return l.errs
}

// ValidationError is the public multi-error report returned by a failed
// Validate/ValidateJSON/Assign call, spec.md §6.
type ValidationError struct {
	Title string
	List  []*LineError
}

func newValidationError(title string, list *ErrorList) *ValidationError {
	return &ValidationError{Title: title, List: list.Errors()}
}

// Errors returns the ordered list of {kind, loc, message, input_value}
// records, spec.md §6.
func (v *ValidationError) Errors() []*LineError { return v.List }

// Error implements the error interface with the canonical multi-line
// format from spec.md §6.
func (v *ValidationError) Error() string {
	var b strings.Builder
	n := len(v.List)
	plural := "s"
	if n == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "%d validation error%s for %s", n, plural, v.Title)
	for _, e := range v.List {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}
