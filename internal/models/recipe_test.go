package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "desserts", NormalizeCategory("desserts"))
	assert.Equal(t, DefaultCategory, NormalizeCategory(""))
	assert.Equal(t, DefaultCategory, NormalizeCategory("midnight-snacking"))
	assert.Equal(t, DefaultCategory, NormalizeCategory("Desserts"))
}

func TestJSONBStringArray(t *testing.T) {
	t.Run("should marshal an empty array as []", func(t *testing.T) {
		val, err := JSONBStringArray(nil).Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", val)
	})

	t.Run("should round-trip through driver value", func(t *testing.T) {
		in := JSONBStringArray{"2 cups flour", "1 egg"}
		val, err := in.Value()
		require.NoError(t, err)

		var out JSONBStringArray
		require.NoError(t, out.Scan(val))
		assert.Equal(t, in, out)
	})

	t.Run("should scan nil to an empty array", func(t *testing.T) {
		var out JSONBStringArray
		require.NoError(t, out.Scan(nil))
		assert.Empty(t, out)
	})
}
