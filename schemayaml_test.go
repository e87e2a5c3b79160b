package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestBuildYAMLCompilesRecordSchema(t *testing.T) {
	doc := []byte(`
type: record
name: Person
fields:
  name:
    schema: str
  age:
    schema:
      type: int
      ge: 0
`)
	v, err := validum.NewCompiler().BuildYAML(doc)
	require.NoError(t, err)

	out, err := v.Validate(map[string]any{"name": "Ada", "age": 30})
	require.NoError(t, err)
	rv := out.(*validum.RecordValue)
	assert.Equal(t, "Ada", rv.Fields["name"])
	assert.Equal(t, int64(30), rv.Fields["age"])

	_, err = v.Validate(map[string]any{"name": "Ada", "age": -1})
	require.Error(t, err)
	assert.Equal(t, validum.KindGreaterThanEq, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestBuildYAMLRejectsInvalidYAML(t *testing.T) {
	_, err := validum.NewCompiler().BuildYAML([]byte("not: [valid"))
	require.Error(t, err)
}
