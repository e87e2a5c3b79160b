package validum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestValidateJSONRecordIntegerFields(t *testing.T) {
	schema := validum.Record("Point", map[string]*validum.FieldSpec{
		"x": validum.Field(validum.Int()),
		"y": validum.Field(validum.Int()),
	})
	v := mustBuild(t, schema)

	out, err := v.ValidateJSON([]byte(`{"x": 1, "y": 2}`))
	require.NoError(t, err)
	rv := out.(*validum.RecordValue)
	assert.Equal(t, int64(1), rv.Fields["x"])
	assert.Equal(t, int64(2), rv.Fields["y"])
}

func TestValidationErrorFormat(t *testing.T) {
	v, err := validum.NewCompiler().BuildTitled(validum.Bool(), "Flag")
	require.NoError(t, err)

	_, err = v.Validate("nope")
	require.Error(t, err)
	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "1 validation error for Flag"))
	assert.Contains(t, msg, "kind=bool_parsing")
	assert.Contains(t, msg, "input_value=nope")
}

func TestValidatorReprRoundTrip(t *testing.T) {
	schema := validum.Record("User", map[string]*validum.FieldSpec{
		"name": validum.Field(validum.Str()),
	})
	v, err := validum.NewCompiler().BuildTitled(schema, "User")
	require.NoError(t, err)

	data, err := v.MarshalJSON()
	require.NoError(t, err)

	v2, err := validum.CompileJSON(validum.NewCompiler(), data)
	require.NoError(t, err)
	assert.Equal(t, v.Repr(), v2.Repr())
}

func TestAssignOnNonRecordReturnsErrNotARecord(t *testing.T) {
	v := mustBuild(t, validum.Int())
	_, err := v.Assign(map[string]any{}, "x", 1)
	require.ErrorIs(t, err, validum.ErrNotARecord)
}

func TestValidateStrictRejectsLaxCoercion(t *testing.T) {
	v := mustBuild(t, validum.Int())

	_, err := v.ValidateStrict("42")
	require.Error(t, err)
	assert.Equal(t, validum.KindIntType, err.(*validum.ValidationError).Errors()[0].Kind)
}
