package validum

// recordField is one compiled field of a recordNode: its validator,
// optional default (inserted without validation, spec.md §4.5), and
// optional alias consulted before the field name during lookup.
type recordField struct {
	name       string
	node       Node
	alias      string
	hasDefault bool
	def        any
}

// RecordValue is the validated output of a record node, spec.md §3:
// "a pair (fields_by_name, set_of_fields_set) where set_of_fields_set
// records which names were explicitly provided".
type RecordValue struct {
	Fields map[string]any
	Set    map[string]struct{}
}

// missingView stands in for a record field that was absent from the
// input, so a "missing" LineError reports a null excerpt rather than
// reusing the enclosing mapping's raw value.
type missingView struct{}

func (missingView) Kind() ValueKind                          { return KindValNull }
func (missingView) Raw() any                                 { return nil }
func (missingView) AsBool(bool) (bool, Kind, bool)            { return false, KindBoolType, false }
func (missingView) AsInt(bool) (int64, Kind, bool)            { return 0, KindIntType, false }
func (missingView) AsFloat(bool) (float64, Kind, bool)        { return 0, KindFloatType, false }
func (missingView) AsString(bool) (string, Kind, bool)        { return "", KindStrType, false }
func (missingView) AsDate(bool) (Date, Kind, bool)            { return Date{}, KindDateType, false }
func (missingView) Items() ([]View, bool)                     { return nil, false }
func (missingView) Entries() ([]MapEntry, bool)               { return nil, false }
func (missingView) Lookup(string) (View, bool)                { return nil, false }
func (missingView) Len() int                                  { return 0 }
