package validum

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// textNode is the parsed-JSON document tree backing a textView. Unlike
// decoding straight into map[string]any, it preserves object key order
// (spec.md §4.1 "a text input's mapping view iterates in document
// order") and keeps numbers as their original decimal text until a
// validator actually asks for int/float, so integers with more than 53
// bits of precision don't get mangled by a float64 round trip.
type textNode struct {
	kind    ValueKind
	boolV   bool
	numText string
	strV    string
	items   []textNode
	entries []textEntry
}

type textEntry struct {
	key string
	val textNode
}

// ParseJSON decodes a JSON document into a View, preserving object key
// order and exact numeric text (spec.md §4.1 Input Abstraction, text
// kind).
func ParseJSON(data []byte) (View, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	node, err := decodeTextNode(dec)
	if err != nil {
		return nil, err
	}
	return textView{n: node}, nil
}

func decodeTextNode(dec *jsontext.Decoder) (textNode, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return textNode{}, err
	}
	switch tok.Kind() {
	case 'n':
		return textNode{kind: KindValNull}, nil
	case 't', 'f':
		return textNode{kind: KindValBool, boolV: tok.Bool()}, nil
	case '"':
		return textNode{kind: KindValString, strV: tok.String()}, nil
	case '0':
		return textNode{kind: KindValFloat, numText: tok.String()}, nil
	case '[':
		var items []textNode
		for dec.PeekKind() != ']' {
			child, err := decodeTextNode(dec)
			if err != nil {
				return textNode{}, err
			}
			items = append(items, child)
		}
		if _, err := dec.ReadToken(); err != nil { // ']'
			return textNode{}, err
		}
		return textNode{kind: KindValSequence, items: items}, nil
	case '{':
		var entries []textEntry
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return textNode{}, err
			}
			val, err := decodeTextNode(dec)
			if err != nil {
				return textNode{}, err
			}
			entries = append(entries, textEntry{key: keyTok.String(), val: val})
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return textNode{}, err
		}
		return textNode{kind: KindValMapping, entries: entries}, nil
	default:
		return textNode{}, fmt.Errorf("validum: unexpected JSON token kind %q", tok.Kind())
	}
}

// textView is the "text" View kind: a parsed JSON document (spec.md
// §4.1). It never reports KindValBytes, matching native/text input-kind
// asymmetry: bytes are a native-only concept.
type textView struct {
	n textNode
}

func (t textView) Kind() ValueKind { return t.effectiveKind() }

func (t textView) Raw() any {
	switch t.n.kind {
	case KindValNull:
		return nil
	case KindValBool:
		return t.n.boolV
	case KindValString:
		return t.n.strV
	case KindValFloat:
		if f, err := strconv.ParseFloat(t.n.numText, 64); err == nil {
			return f
		}
		return t.n.numText
	case KindValSequence:
		out := make([]any, len(t.n.items))
		for i, it := range t.n.items {
			out[i] = textView{n: it}.Raw()
		}
		return out
	case KindValMapping:
		out := make(map[string]any, len(t.n.entries))
		for _, e := range t.n.entries {
			out[e.key] = textView{n: e.val}.Raw()
		}
		return out
	default:
		return nil
	}
}

func (t textView) rawScalar() any {
	switch t.n.kind {
	case KindValBool:
		return t.n.boolV
	case KindValString:
		return t.n.strV
	case KindValFloat:
		if i, err := strconv.ParseInt(t.n.numText, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(t.n.numText, 64)
		return f
	default:
		return nil
	}
}

// effectiveKind reclassifies a JSON number as KindValInt when its text
// carries no fractional/exponent part, so int coercion sees a natural
// int rather than always falling into the float branch.
func (t textView) effectiveKind() ValueKind {
	if t.n.kind != KindValFloat {
		return t.n.kind
	}
	if isIntegerText(t.n.numText) {
		return KindValInt
	}
	return KindValFloat
}

func isIntegerText(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return false
		}
	}
	return true
}

func (t textView) AsBool(strict bool) (bool, Kind, bool) {
	return coerceBool(t.rawScalar(), t.effectiveKind(), strict)
}

func (t textView) AsInt(strict bool) (int64, Kind, bool) {
	if t.n.kind == KindValFloat {
		if i, err := strconv.ParseInt(t.n.numText, 10, 64); err == nil {
			return i, "", true
		}
		f, err := strconv.ParseFloat(t.n.numText, 64)
		if err != nil {
			return 0, KindIntParsing, false
		}
		return coerceInt(f, KindValFloat, strict)
	}
	return coerceInt(t.rawScalar(), t.effectiveKind(), strict)
}

func (t textView) AsFloat(strict bool) (float64, Kind, bool) {
	if t.n.kind == KindValFloat {
		f, err := strconv.ParseFloat(t.n.numText, 64)
		if err != nil {
			return 0, KindFloatParsing, false
		}
		return f, "", true
	}
	return coerceFloat(t.rawScalar(), t.effectiveKind(), strict)
}

func (t textView) AsString(strict bool) (string, Kind, bool) {
	return coerceString(t.rawScalar(), t.effectiveKind(), strict)
}

func (t textView) AsDate(strict bool) (Date, Kind, bool) {
	return coerceDate(t.rawScalar(), t.effectiveKind(), strict)
}

func (t textView) Items() ([]View, bool) {
	if t.n.kind != KindValSequence {
		return nil, false
	}
	out := make([]View, len(t.n.items))
	for i, it := range t.n.items {
		out[i] = textView{n: it}
	}
	return out, true
}

func (t textView) Entries() ([]MapEntry, bool) {
	if t.n.kind != KindValMapping {
		return nil, false
	}
	out := make([]MapEntry, len(t.n.entries))
	for i, e := range t.n.entries {
		out[i] = MapEntry{Key: e.key, Value: textView{n: e.val}}
	}
	return out, true
}

func (t textView) Lookup(key string) (View, bool) {
	if t.n.kind != KindValMapping {
		return nil, false
	}
	for _, e := range t.n.entries {
		if e.key == key {
			return textView{n: e.val}, true
		}
	}
	return nil, false
}

func (t textView) Len() int {
	switch t.n.kind {
	case KindValSequence:
		return len(t.n.items)
	case KindValMapping:
		return len(t.n.entries)
	case KindValString:
		return len([]rune(t.n.strV))
	default:
		return 0
	}
}
