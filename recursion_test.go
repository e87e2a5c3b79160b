package validum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

// A record with an optional self-ref field is the canonical linked-list
// pattern: each hop narrows into a strictly smaller child view, so
// recursion through a record is always bounded by the input's actual
// depth and must compile.
func TestRecursiveContainerLinkedListCompiles(t *testing.T) {
	inner := validum.Record("Node", map[string]*validum.FieldSpec{
		"value": validum.Field(validum.Int()),
		"next":  validum.Field(validum.Optional(validum.RecursiveRef("Node"))),
	})
	schema := validum.RecursiveContainer("Node", inner)

	v, err := validum.NewCompiler().Build(schema)
	require.NoError(t, err)

	out, err := v.Validate(map[string]any{
		"value": 1,
		"next": map[string]any{
			"value": 2,
			"next":  nil,
		},
	})
	require.NoError(t, err)
	rv, ok := out.(*validum.RecordValue)
	require.True(t, ok)
	assert.Equal(t, int64(1), rv.Fields["value"])
	inner2 := rv.Fields["next"].(*validum.RecordValue)
	assert.Equal(t, int64(2), inner2.Fields["value"])
	assert.Nil(t, inner2.Fields["next"])
}

// A union whose sole choice is an optional wrapping a ref to itself has
// no node that ever narrows into a smaller child view: every path from
// the container's inner schema back to the ref passes only through
// transparent nodes (optional, union), so it must be rejected at
// compile time.
func TestRecursiveContainerTransparentCycleRejected(t *testing.T) {
	inner := &validum.Schema{
		Type: "union",
		Choices: []*validum.Schema{
			validum.Optional(validum.RecursiveRef("Loop")),
		},
	}
	schema := validum.RecursiveContainer("Loop", inner)

	_, err := validum.NewCompiler().Build(schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validum.ErrCyclicReference))
}

func TestRecursiveRefUnresolvedName(t *testing.T) {
	schema := validum.RecursiveRef("NeverDeclared")
	_, err := validum.NewCompiler().Build(schema)
	require.Error(t, err)
}
