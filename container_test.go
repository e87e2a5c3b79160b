package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestListItemErrorsAccumulateBeforeSizeCheck(t *testing.T) {
	v := mustBuild(t, validum.List(validum.Int()))

	out, err := v.Validate([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, out)

	_, err = v.Validate([]any{1, "x", "y"})
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "[1]", errs[0].Loc.String())
	assert.Equal(t, "[2]", errs[1].Loc.String())
}

func TestListSizeBounds(t *testing.T) {
	v := mustBuild(t, validum.List(validum.Int(), validum.MinItems(2), validum.MaxItems(3)))

	_, err := v.Validate([]any{1})
	require.Error(t, err)
	assert.Equal(t, validum.KindTooFewItems, err.(*validum.ValidationError).Errors()[0].Kind)

	_, err = v.Validate([]any{1, 2, 3, 4})
	require.Error(t, err)
	assert.Equal(t, validum.KindTooManyItems, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestSetDedupesByCoercedValue(t *testing.T) {
	v := mustBuild(t, validum.Set(validum.Int()))

	out, err := v.Validate([]any{1, "1", 2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{int64(1), int64(2)}, out)
}

func TestDictKeyAndValueValidation(t *testing.T) {
	v := mustBuild(t, validum.Dict(validum.Str(), validum.Int()))

	out, err := v.Validate(map[string]any{"a": 1, "b": "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(2)}, out)

	_, err = v.Validate(map[string]any{"a": "not-an-int"})
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	assert.Equal(t, "a", errs[0].Loc.String())
}

func TestOptionalPassesNullThrough(t *testing.T) {
	v := mustBuild(t, validum.Optional(validum.Int()))

	out, err := v.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = v.Validate(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out)

	_, err = v.Validate("x")
	require.Error(t, err)
}

func TestUnionSmartModePrefersKindMatch(t *testing.T) {
	v := mustBuild(t, validum.Union(validum.Str(), validum.Int()))

	out, err := v.Validate(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out)

	out, err = v.Validate("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestUnionCollectModeRewritesSubPaths(t *testing.T) {
	// The record choice is preferred for a mapping input by kind, but it
	// fails on x, so collect mode runs across both choices, and each
	// choice's own field-path error must survive
	// under its choice[<index>] prefix (not just the index alone).
	fields := map[string]*validum.FieldSpec{
		"x": validum.Field(validum.Int()),
	}
	v := mustBuild(t, validum.Union(validum.Record("A", fields), validum.Str()))

	_, err := v.Validate(map[string]any{"x": "not-an-int"})
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.Loc.String() == "choice[0].x" {
			found = true
		}
	}
	assert.True(t, found, "expected a choice[0].x location among: %v", errs)
}
