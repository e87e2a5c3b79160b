package validum_test

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestSchemaBareStringSugar(t *testing.T) {
	var s validum.Schema
	require.NoError(t, json.Unmarshal([]byte(`"str"`), &s))
	assert.Equal(t, "str", s.Type)

	v, err := validum.NewCompiler().Build(&s)
	require.NoError(t, err)
	out, err := v.Validate("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestFieldSpecDistinguishesAbsentFromExplicitNullDefault(t *testing.T) {
	var noDefault validum.FieldSpec
	require.NoError(t, json.Unmarshal([]byte(`{"schema": "int"}`), &noDefault))
	assert.False(t, noDefault.HasDefault)

	var nullDefault validum.FieldSpec
	require.NoError(t, json.Unmarshal([]byte(`{"schema": "int", "default": null}`), &nullDefault))
	assert.True(t, nullDefault.HasDefault)
	assert.Nil(t, nullDefault.Default)
}

func TestSchemaMarshalIsDeterministic(t *testing.T) {
	schema := validum.Record("P", map[string]*validum.FieldSpec{
		"b": validum.Field(validum.Int()),
		"a": validum.Field(validum.Str()),
	})
	data1, err := json.Marshal(schema)
	require.NoError(t, err)
	data2, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, data1, data2)
}
