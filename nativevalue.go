package validum

import (
	"reflect"
	"sort"
)

// nativeView wraps an arbitrary Go value (the "native" input kind of
// spec.md §4.1): produced when the caller passes a Go value directly to
// Validate rather than a JSON/YAML document.
type nativeView struct {
	v any
}

// NewNativeView wraps v as a View for validation against a compiled
// Validator.
func NewNativeView(v any) View { return nativeView{v: v} }

func (n nativeView) Kind() ValueKind { return classify(n.v, true) }
func (n nativeView) Raw() any        { return n.v }

func (n nativeView) AsBool(strict bool) (bool, Kind, bool) {
	return coerceBool(n.v, n.Kind(), strict)
}

func (n nativeView) AsInt(strict bool) (int64, Kind, bool) {
	return coerceInt(n.v, n.Kind(), strict)
}

func (n nativeView) AsFloat(strict bool) (float64, Kind, bool) {
	return coerceFloat(n.v, n.Kind(), strict)
}

func (n nativeView) AsString(strict bool) (string, Kind, bool) {
	return coerceString(n.v, n.Kind(), strict)
}

func (n nativeView) AsDate(strict bool) (Date, Kind, bool) {
	return coerceDate(n.v, n.Kind(), strict)
}

func (n nativeView) Items() ([]View, bool) {
	switch t := n.v.(type) {
	case []any:
		out := make([]View, len(t))
		for i, e := range t {
			out[i] = nativeView{v: e}
		}
		return out, true
	case nil, []byte:
		return nil, false
	default:
		rv := reflect.ValueOf(n.v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, false
		}
		out := make([]View, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = nativeView{v: rv.Index(i).Interface()}
		}
		return out, true
	}
}

func (n nativeView) Entries() ([]MapEntry, bool) {
	switch t := n.v.(type) {
	case map[string]any:
		keys := sortedKeys(t)
		out := make([]MapEntry, len(keys))
		for i, k := range keys {
			out[i] = MapEntry{Key: k, Value: nativeView{v: t[k]}}
		}
		return out, true
	case nil:
		return nil, false
	default:
		rv := reflect.ValueOf(n.v)
		if rv.Kind() != reflect.Map {
			return nil, false
		}
		out := make([]MapEntry, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			ks, ok := key.Interface().(string)
			if !ok {
				return nil, false
			}
			out = append(out, MapEntry{Key: ks, Value: nativeView{v: rv.MapIndex(key).Interface()}})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out, true
	}
}

func (n nativeView) Lookup(key string) (View, bool) {
	switch t := n.v.(type) {
	case map[string]any:
		v, ok := t[key]
		if !ok {
			return nil, false
		}
		return nativeView{v: v}, true
	default:
		rv := reflect.ValueOf(n.v)
		if rv.Kind() != reflect.Map {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key))
		if !mv.IsValid() {
			return nil, false
		}
		return nativeView{v: mv.Interface()}, true
	}
}

func (n nativeView) Len() int {
	switch t := n.v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	case string:
		return len([]rune(t))
	case nil:
		return 0
	default:
		rv := reflect.ValueOf(n.v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return rv.Len()
		default:
			return 0
		}
	}
}
