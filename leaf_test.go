package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func mustBuild(t *testing.T, schema *validum.Schema) *validum.Validator {
	t.Helper()
	v, err := validum.NewCompiler().Build(schema)
	require.NoError(t, err)
	return v
}

func TestBoolCoercion(t *testing.T) {
	v := mustBuild(t, validum.Bool())

	out, err := v.Validate("tRuE")
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = v.Validate("no")
	require.NoError(t, err)
	assert.Equal(t, false, out)

	_, err = v.Validate("wrong")
	require.Error(t, err)
	ve, ok := err.(*validum.ValidationError)
	require.True(t, ok)
	assert.Equal(t, validum.KindBoolParsing, ve.Errors()[0].Kind)
	assert.Empty(t, ve.Errors()[0].Loc)
}

func TestIntCoercion(t *testing.T) {
	v := mustBuild(t, validum.Int())

	_, err := v.Validate(12.5)
	require.Error(t, err)
	assert.Equal(t, validum.KindIntFromFloat, err.(*validum.ValidationError).Errors()[0].Kind)

	out, err := v.Validate("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), out)

	_, err = v.Validate([]int{1, 2})
	require.Error(t, err)
	assert.Equal(t, validum.KindIntType, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestIntBoundsExact(t *testing.T) {
	// Bounds and multiple_of are checked exactly; multiple_of is checked
	// before the bounds, so the le failure is tested with an even value.
	v := mustBuild(t, validum.Int(validum.Ge(1), validum.Le(10), validum.MultipleOf(2)))

	out, err := v.Validate(4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out)

	_, err = v.Validate(12)
	require.Error(t, err)
	assert.Equal(t, validum.KindLessThanEqual, err.(*validum.ValidationError).Errors()[0].Kind)

	_, err = v.Validate(3)
	require.Error(t, err)
	assert.Equal(t, validum.KindMultipleOf, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestStringConstraintOrdering(t *testing.T) {
	// str_too_long must fire before strip_whitespace runs, spec.md §4.3
	// scenario 3: "1234  " is 6 chars before stripping.
	v := mustBuild(t, validum.Str(validum.MaxLen(5), validum.StripWhitespace()))

	_, err := v.Validate("1234  ")
	require.Error(t, err)
	assert.Equal(t, validum.KindStrTooLong, err.(*validum.ValidationError).Errors()[0].Kind)

	out, err := v.Validate("12  ")
	require.NoError(t, err)
	assert.Equal(t, "12", out)
}

func TestStringCaseFolding(t *testing.T) {
	v := mustBuild(t, validum.Str(validum.ToLower()))
	out, err := v.Validate("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestLiteralFirstMatchWins(t *testing.T) {
	v := mustBuild(t, validum.Literal(1, "1", true))

	out, err := v.Validate(1)
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	_, err = v.Validate(2)
	require.Error(t, err)
	assert.Equal(t, validum.KindLiteralError, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestDateBoundsAndParsing(t *testing.T) {
	v := mustBuild(t, validum.DateSchema(validum.Ge("2000-01-01"), validum.Lt("2020-01-01")))

	out, err := v.Validate("2010-06-15")
	require.NoError(t, err)
	assert.Equal(t, validum.Date{Year: 2010, Month: 6, Day: 15}, out)

	_, err = v.Validate("2020-01-01")
	require.Error(t, err)
	assert.Equal(t, validum.KindLessThan, err.(*validum.ValidationError).Errors()[0].Kind)

	_, err = v.Validate("not-a-date")
	require.Error(t, err)
	assert.Equal(t, validum.KindDateParsing, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestNoneAndAny(t *testing.T) {
	none := mustBuild(t, validum.None())
	out, err := none.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
	_, err = none.Validate(0)
	require.Error(t, err)

	any1 := mustBuild(t, validum.Any())
	out, err = any1.Validate(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, out)
}
