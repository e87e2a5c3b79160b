package validum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/go-json-experiment/json"
)

// Rat wraps big.Rat so bound constraints (le/ge/lt/gt/multiple_of) on
// int/float leaves compare exactly, never by lossy float64 equality
// (spec.md §4.3: "multiple_of and bound comparisons must not suffer
// floating-point drift").
type Rat struct {
	*big.Rat
}

// NewRat builds a Rat from a schema-declared bound (an int64, float64,
// or decimal string).
func NewRat(value any) *Rat {
	r, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{r}
}

func convertToBigRat(data any) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedTypeForRat
	}

	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, ErrFailedToConvertToRat
	}
	return r, nil
}

// UnmarshalJSON implements json.Unmarshaler for Rat, accepting either a
// JSON number or a decimal string.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp any
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// FormatRat renders r as a plain decimal string, trimming trailing
// zeros, for diagnostics and Repr().
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	dec := r.FloatString(10)
	trimmed := strings.TrimRight(strings.TrimRight(dec, "0"), ".")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// cmpFloat compares a float64 input value against a Rat bound exactly.
func cmpFloat(v float64, bound *Rat) int {
	vr := new(big.Rat).SetFloat64(v)
	if vr == nil {
		return 0
	}
	return vr.Cmp(bound.Rat)
}

// cmpInt compares an int64 input value against a Rat bound exactly.
func cmpInt(v int64, bound *Rat) int {
	vr := new(big.Rat).SetInt64(v)
	return vr.Cmp(bound.Rat)
}

// isMultipleOfFloat reports whether v is an exact multiple of m using
// rational arithmetic.
func isMultipleOfFloat(v float64, m *Rat) bool {
	vr := new(big.Rat).SetFloat64(v)
	if vr == nil || m.Sign() == 0 {
		return false
	}
	q := new(big.Rat).Quo(vr, m.Rat)
	return q.IsInt()
}

// isMultipleOfInt reports whether v is an exact multiple of m using
// rational arithmetic.
func isMultipleOfInt(v int64, m *Rat) bool {
	vr := new(big.Rat).SetInt64(v)
	if m.Sign() == 0 {
		return false
	}
	q := new(big.Rat).Quo(vr, m.Rat)
	return q.IsInt()
}
