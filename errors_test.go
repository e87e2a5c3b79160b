package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestLocalizedMessageFallsBackToEnglishTemplate(t *testing.T) {
	v := mustBuild(t, validum.Bool())
	_, err := v.Validate("nope")
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	assert.Equal(t, "Input should be a valid boolean, unable to interpret input", errs[0].Message())
}

func TestLocalizeWithAlternateLocale(t *testing.T) {
	bundle, err := validum.I18n()
	require.NoError(t, err)
	zh := bundle.NewLocalizer("zh-Hans")

	v := mustBuild(t, validum.Bool())
	_, err = v.Validate("nope")
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	assert.Equal(t, "输入应为有效的布尔值，无法解析该输入", errs[0].Localize(zh))
}

func TestErrorListEmptyAndExtend(t *testing.T) {
	l1 := validum.NewErrorList()
	assert.True(t, l1.Empty())

	l2 := validum.NewErrorList()
	l2.Add(&validum.LineError{Kind: validum.KindIntType})
	l1.Extend(l2)
	assert.False(t, l1.Empty())
	assert.Equal(t, 1, l1.Len())
}
