package validum

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// classify determines the ValueKind of a raw value. native controls
// whether a []byte is reported as KindValBytes (only ever true for
// genuinely native Go input; a JSON-decoded document never produces
// []byte, matching spec.md §4.1's "Text inputs never return bytes").
func classify(v any, native bool) ValueKind {
	switch t := v.(type) {
	case nil:
		return KindValNull
	case bool:
		return KindValBool
	case string:
		return KindValString
	case []byte:
		if native {
			return KindValBytes
		}
		return KindValString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindValInt
	case float32, float64:
		return KindValFloat
	case []any:
		return KindValSequence
	case map[string]any:
		return KindValMapping
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			return KindValSequence
		case reflect.Map:
			return KindValMapping
		default:
			_ = t
			return KindValOther
		}
	}
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// coerceBool implements spec.md §4.1's bool coercion table.
func coerceBool(v any, kind ValueKind, strict bool) (bool, Kind, bool) {
	if kind == KindValBool {
		return v.(bool), "", true
	}
	if strict {
		return false, KindBoolType, false
	}
	switch kind {
	case KindValString:
		s := strings.ToLower(strings.TrimSpace(toString(v)))
		switch s {
		case "true", "yes", "1":
			return true, "", true
		case "false", "no", "0":
			return false, "", true
		default:
			return false, KindBoolParsing, false
		}
	case KindValInt:
		i, _ := asInt64(v)
		switch i {
		case 0:
			return false, "", true
		case 1:
			return true, "", true
		default:
			return false, KindBoolParsing, false
		}
	default:
		return false, KindBoolType, false
	}
}

// coerceInt implements spec.md §4.1's int coercion table.
func coerceInt(v any, kind ValueKind, strict bool) (int64, Kind, bool) {
	if kind == KindValInt {
		i, _ := asInt64(v)
		return i, "", true
	}
	if strict {
		return 0, KindIntType, false
	}
	switch kind {
	case KindValFloat:
		f, _ := asFloat64(v)
		if f != math.Trunc(f) {
			return 0, KindIntFromFloat, false
		}
		return int64(f), "", true
	case KindValString:
		s := strings.TrimSpace(toString(v))
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, "", true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if f != math.Trunc(f) {
				return 0, KindIntFromFloat, false
			}
			return int64(f), "", true
		}
		return 0, KindIntParsing, false
	case KindValBool:
		if v.(bool) {
			return 1, "", true
		}
		return 0, "", true
	default:
		return 0, KindIntType, false
	}
}

// coerceFloat implements spec.md §4.1's float coercion table.
func coerceFloat(v any, kind ValueKind, strict bool) (float64, Kind, bool) {
	if kind == KindValFloat || kind == KindValInt {
		f, _ := asFloat64(v)
		return f, "", true
	}
	if strict {
		return 0, KindFloatType, false
	}
	switch kind {
	case KindValString:
		s := strings.TrimSpace(toString(v))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, "", true
		}
		return 0, KindFloatParsing, false
	case KindValBool:
		if v.(bool) {
			return 1, "", true
		}
		return 0, "", true
	default:
		return 0, KindFloatType, false
	}
}

// coerceString implements spec.md §4.1's string coercion table: ints and
// floats stringify via canonical decimal, booleans never coerce.
func coerceString(v any, kind ValueKind, strict bool) (string, Kind, bool) {
	if kind == KindValString {
		return toString(v), "", true
	}
	if strict {
		return "", KindStrType, false
	}
	switch kind {
	case KindValInt:
		i, _ := asInt64(v)
		return strconv.FormatInt(i, 10), "", true
	case KindValFloat:
		f, _ := asFloat64(v)
		return strconv.FormatFloat(f, 'g', -1, 64), "", true
	default:
		return "", KindStrType, false
	}
}

// coerceDate implements spec.md §4.1's date coercion table.
func coerceDate(v any, kind ValueKind, strict bool) (Date, Kind, bool) {
	if strict {
		if kind != KindValString {
			return Date{}, KindDateType, false
		}
		d, ok := parseISODate(toString(v))
		if !ok {
			return Date{}, KindDateParsing, false
		}
		return d, "", true
	}
	switch kind {
	case KindValString:
		d, ok := parseISODate(toString(v))
		if !ok {
			return Date{}, KindDateParsing, false
		}
		return d, "", true
	case KindValBytes:
		d, ok := parseISODate(string(v.([]byte)))
		if !ok {
			return Date{}, KindDateParsing, false
		}
		return d, "", true
	case KindValInt:
		i, _ := asInt64(v)
		return dateFromUnixSeconds(i), "", true
	case KindValFloat:
		f, _ := asFloat64(v)
		return dateFromUnixSeconds(int64(f)), "", true
	default:
		return Date{}, KindDateType, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return ""
}

func parseISODate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
}

func dateFromUnixSeconds(sec int64) Date {
	t := time.Unix(sec, 0).UTC()
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) String() string {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
