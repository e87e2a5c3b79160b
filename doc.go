// Package validum compiles a declarative schema — scalars, containers,
// tagged unions, named-field records, and recursive references — into an
// immutable validator graph, then validates or coerces a runtime value (or
// a parsed JSON/YAML document) against that graph into a canonical value
// or a structured multi-error report.
package validum
