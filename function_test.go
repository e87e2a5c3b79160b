package validum_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestFunctionBeforeTransformsRawInput(t *testing.T) {
	c := validum.NewCompiler()
	c.RegisterFunction("trim", validum.FuncBefore(func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return raw, nil
		}
		return strings.TrimSpace(s), nil
	}))
	v, err := c.Build(validum.FunctionBefore("trim", validum.Str(validum.MinLen(1))))
	require.NoError(t, err)

	out, err := v.Validate("  hi  ")
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestFunctionAfterTransformsValidatedValue(t *testing.T) {
	c := validum.NewCompiler()
	c.RegisterFunction("double", validum.FuncAfter(func(value any) (any, error) {
		return value.(int64) * 2, nil
	}))
	v, err := c.Build(validum.FunctionAfter("double", validum.Int()))
	require.NoError(t, err)

	out, err := v.Validate(5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out)
}

func TestFunctionPlainBypassesInnerSchema(t *testing.T) {
	c := validum.NewCompiler()
	c.RegisterFunction("upper", validum.FuncPlain(func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		return strings.ToUpper(s), nil
	}))
	v, err := c.Build(validum.FunctionPlain("upper"))
	require.NoError(t, err)

	out, err := v.Validate("hi")
	require.NoError(t, err)
	assert.Equal(t, "HI", out)
}

func TestFunctionWrapPropagatesInnerLineErrors(t *testing.T) {
	c := validum.NewCompiler()
	c.RegisterFunction("passthrough", validum.FuncWrap(func(raw any, callInner func(any) (any, error)) (any, error) {
		return callInner(raw)
	}))
	v, err := c.Build(validum.FunctionWrap("passthrough", validum.Int()))
	require.NoError(t, err)

	_, err = v.Validate("not-an-int")
	require.Error(t, err)
	errs := err.(*validum.ValidationError).Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, validum.KindIntParsing, errs[0].Kind)
}
