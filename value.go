package validum

// ValueKind is the type tag an Input Abstraction view exposes for a value,
// spec.md §4.1.
type ValueKind string

const (
	KindValBool     ValueKind = "bool"
	KindValInt      ValueKind = "int"
	KindValFloat    ValueKind = "float"
	KindValString   ValueKind = "string"
	KindValBytes    ValueKind = "bytes"
	KindValSequence ValueKind = "sequence"
	KindValMapping  ValueKind = "mapping"
	KindValNull     ValueKind = "null"
	KindValOther    ValueKind = "other"
)

// MapEntry is one key/value pair yielded while iterating a mapping view,
// already carrying the raw key string for location-path purposes
// (spec.md §4.1 "iteration adapters ... producing child views that carry
// a location segment").
type MapEntry struct {
	Key   string
	Value View
}

// View is the uniform read-only interface every validator node consumes,
// regardless of whether the input is a native Go value or a parsed JSON
// document (spec.md §4.1 Input Abstraction).
type View interface {
	// Kind reports the value's natural type tag.
	Kind() ValueKind

	// Raw returns the underlying value for diagnostics / excerpting.
	Raw() any

	// AsBool/AsInt/AsFloat/AsString/AsDate each attempt to coerce the
	// view to the named type. strict=true permits only an exact type
	// match. On failure the returned Kind names which error template
	// applies (e.g. KindBoolType vs KindBoolParsing) and ok is false.
	AsBool(strict bool) (bool, Kind, bool)
	AsInt(strict bool) (int64, Kind, bool)
	AsFloat(strict bool) (float64, Kind, bool)
	AsString(strict bool) (string, Kind, bool)
	AsDate(strict bool) (Date, Kind, bool)

	// Items iterates a sequence view (list/set input). ok is false if
	// Kind() != KindValSequence.
	Items() ([]View, bool)

	// Entries iterates a mapping view (dict/record input) in a
	// deterministic order. ok is false if Kind() != KindValMapping.
	Entries() ([]MapEntry, bool)

	// Lookup fetches one field of a mapping view by key without forcing
	// a full Entries() iteration.
	Lookup(key string) (View, bool)

	// Len reports the element/entry count for a sequence or mapping
	// view.
	Len() int
}

// Date is a date-only value (no time-of-day, no timezone), matching
// spec.md §4.3 "date bound comparisons use date-only ordering".
type Date struct {
	Year  int
	Month int
	Day   int
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
