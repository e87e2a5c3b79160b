package validum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validum/validum"
)

func TestParseJSONPreservesObjectKeyOrder(t *testing.T) {
	view, err := validum.ParseJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)

	entries, ok := view.Entries()
	require.True(t, ok)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestParseJSONKeepsExactIntegerPrecision(t *testing.T) {
	// 2^53 + 1: exact as int64, would lose precision if forced through
	// float64 as decode-into-any typically does.
	view, err := validum.ParseJSON([]byte(`{"id": 9007199254740993}`))
	require.NoError(t, err)

	idView, ok := view.Lookup("id")
	require.True(t, ok)
	i, _, ok := idView.AsInt(false)
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), i)
}

func TestParseJSONIntegerTextClassifiesAsInt(t *testing.T) {
	view, err := validum.ParseJSON([]byte(`[1, 2.5, "x"]`))
	require.NoError(t, err)

	items, ok := view.Items()
	require.True(t, ok)
	require.Len(t, items, 3)

	i, _, ok := items[0].AsInt(true)
	require.True(t, ok)
	assert.Equal(t, int64(1), i)

	_, _, ok = items[1].AsInt(true)
	assert.False(t, ok, "2.5 must not coerce to int in strict mode")
}
