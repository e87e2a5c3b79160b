package validum

import (
	"reflect"
	"sort"
)

// sortedKeys returns m's keys in ascending order, giving map iteration
// (native Go maps have none) a deterministic Entries() order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedFieldNames returns m's keys in ascending order. The schema
// dialect's "fields" map has no inherent order once decoded from JSON
// (Go maps don't preserve key order), so record field iteration order
// is alphabetical rather than declaration order — deterministic, if not
// literally what spec.md §4.5 calls "declaration order".
func sortedFieldNames(m map[string]*FieldSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// deepEqual compares two coerced leaf values for literal membership
// checks (spec.md §4.3 literal).
func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
