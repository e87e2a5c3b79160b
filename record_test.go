package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func userSchema() *validum.Schema {
	return validum.Record("User", map[string]*validum.FieldSpec{
		"name":  validum.Field(validum.Str()),
		"email": validum.Field(validum.Str(), "email_address"),
		"age":   validum.FieldWithDefault(validum.Int(), int64(0)),
	})
}

func TestRecordDefaultsNotSurfacedAsSet(t *testing.T) {
	v := mustBuild(t, userSchema())

	out, err := v.Validate(map[string]any{"name": "Ada", "email_address": "ada@example.com"})
	require.NoError(t, err)
	rv, ok := out.(*validum.RecordValue)
	require.True(t, ok)
	assert.Equal(t, int64(0), rv.Fields["age"])
	_, set := rv.Set["age"]
	assert.False(t, set, "default-filled field must not appear in set_of_fields_set")
	_, set = rv.Set["name"]
	assert.True(t, set)
}

func TestRecordAliasLookup(t *testing.T) {
	v := mustBuild(t, userSchema())

	out, err := v.Validate(map[string]any{"name": "Ada", "email": "should-be-ignored", "email_address": "ada@example.com"})
	require.NoError(t, err)
	rv := out.(*validum.RecordValue)
	assert.Equal(t, "ada@example.com", rv.Fields["email"])
}

func TestRecordMissingRequiredField(t *testing.T) {
	v := mustBuild(t, userSchema())

	_, err := v.Validate(map[string]any{"name": "Ada"})
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, validum.KindMissing, errs[0].Kind)
	assert.Equal(t, "email", errs[0].Loc.String())
}

func TestRecordExtrasForbid(t *testing.T) {
	schema := userSchema()
	schema.Config = &validum.ConfigSchema{Extra: "forbid"}
	v := mustBuild(t, schema)

	_, err := v.Validate(map[string]any{"name": "Ada", "email_address": "a@b.com", "unexpected": 1})
	require.Error(t, err)
	assert.Equal(t, validum.KindExtraForbidden, err.(*validum.ValidationError).Errors()[0].Kind)
}

func TestRecordExtrasAllow(t *testing.T) {
	schema := userSchema()
	schema.Config = &validum.ConfigSchema{Extra: "allow"}
	v := mustBuild(t, schema)

	out, err := v.Validate(map[string]any{"name": "Ada", "email_address": "a@b.com", "nickname": "ace"})
	require.NoError(t, err)
	rv := out.(*validum.RecordValue)
	assert.Equal(t, "ace", rv.Fields["nickname"])
	_, set := rv.Set["nickname"]
	assert.True(t, set)
}

func TestRecordExtrasIgnore(t *testing.T) {
	v := mustBuild(t, userSchema()) // default policy is "ignore"

	out, err := v.Validate(map[string]any{"name": "Ada", "email_address": "a@b.com", "nickname": "ace"})
	require.NoError(t, err)
	rv := out.(*validum.RecordValue)
	_, present := rv.Fields["nickname"]
	assert.False(t, present)
}

func TestRecordAssignNoRevalidation(t *testing.T) {
	v := mustBuild(t, userSchema())

	existing := map[string]any{"name": "Ada", "email": "a@b.com", "age": int64(30)}
	updated, err := v.Assign(existing, "age", 31)
	require.NoError(t, err)
	assert.Equal(t, int64(31), updated["age"])
	assert.Equal(t, "Ada", updated["name"])
	assert.Equal(t, "a@b.com", updated["email"])

	_, err = v.Assign(existing, "age", "not-an-int")
	require.Error(t, err)
}

func TestRecordConfigCascadesStrMaxLength(t *testing.T) {
	schema := validum.Record("Note", map[string]*validum.FieldSpec{
		"body": validum.Field(validum.Str()),
	})
	maxLen := 3
	schema.Config = &validum.ConfigSchema{StrMaxLength: &maxLen}
	v := mustBuild(t, schema)

	_, err := v.Validate(map[string]any{"body": "hello"})
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	assert.Equal(t, validum.KindStrTooLong, errs[0].Kind)
	assert.Equal(t, "body", errs[0].Loc.String())
}
