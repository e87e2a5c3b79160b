package validum

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// Segment is one element of a LineError's location: either a record field
// name or a sequence index, per spec.md §3 ("each is name-string or
// index-int").
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// NameSegment builds a field-name location segment.
func NameSegment(name string) Segment { return Segment{Name: name} }

// IndexSegment builds a sequence-index location segment.
func IndexSegment(i int) Segment { return Segment{Index: i, IsIndex: true} }

func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Name
}

// Loc is an ordered sequence of Segments, the breadcrumb path from the
// validated root to the offending value (spec.md §2 Error Accumulator).
type Loc []Segment

// Pointer renders Loc as an RFC 6901 JSON Pointer.
func (l Loc) Pointer() string {
	tokens := make([]string, len(l))
	for i, seg := range l {
		tokens[i] = seg.String()
	}
	return "#" + jsonpointer.Format(tokens...)
}

func (l Loc) String() string {
	if len(l) == 0 {
		return ""
	}
	out := ""
	for i, seg := range l {
		if i > 0 {
			out += "."
		}
		if seg.IsIndex {
			out += "[" + strconv.Itoa(seg.Index) + "]"
		} else {
			out += seg.String()
		}
	}
	return out
}

// clone returns a copy of l with extra segments appended, leaving l (and
// any alias sharing its backing array) untouched. Validator nodes push a
// segment on entry and must never mutate their caller's Loc in place —
// the scoped push/pop discipline from spec.md §4.2 is enforced by always
// handing children a fresh slice.
func (l Loc) clone(extra ...Segment) Loc {
	out := make(Loc, len(l), len(l)+len(extra))
	copy(out, l)
	return append(out, extra...)
}
