package cleaned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventorySchema() *Schema {
	return NewSchema().
		Field("name", String()).
		Field("count", Int()).
		Field("tags", ListOf(String())).
		Field("prices", MapOf(String(), Float())).
		Field("id", Either(Int(), UUID())).
		Field("note", Optional(String())).
		MustBuild()
}

func inventoryRecord(t *testing.T) *Record {
	t.Helper()
	rec, err := inventorySchema().Validate(map[string]any{
		"name":   "widget",
		"count":  3,
		"tags":   []any{"a", "b"},
		"prices": map[string]any{"usd": 9.99},
		"id":     42,
	})
	require.NoError(t, err)
	return rec
}

func TestRecordAccessors(t *testing.T) {
	rec := inventoryRecord(t)

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, "widget", rec.Get("name"))
		assert.Equal(t, int64(3), rec.Get("count"))
		assert.Nil(t, rec.Get("note"))
		assert.Nil(t, rec.Get("undeclared"))
	})

	t.Run("fields keep declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"name", "count", "tags", "prices", "id", "note"}, rec.Fields())
	})

	t.Run("to map returns a copy", func(t *testing.T) {
		m := rec.ToMap()
		m["name"] = "tampered"
		assert.Equal(t, "widget", rec.Get("name"))
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		names := rec.Fields()
		names[0] = "tampered"
		assert.Equal(t, "name", rec.Fields()[0])
	})
}

func TestRecordTypedGet(t *testing.T) {
	rec := inventoryRecord(t)

	t.Run("matching type", func(t *testing.T) {
		count, ok := Get[int64](rec, "count")
		require.True(t, ok)
		assert.Equal(t, int64(3), count)
	})

	t.Run("mismatched type", func(t *testing.T) {
		_, ok := Get[string](rec, "count")
		assert.False(t, ok)
	})

	t.Run("absent field", func(t *testing.T) {
		_, ok := Get[string](rec, "undeclared")
		assert.False(t, ok)
	})

	t.Run("must get panics on mismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			MustGet[string](rec, "count")
		})
	})
}

func TestRecordCollectionNarrowing(t *testing.T) {
	rec := inventoryRecord(t)

	t.Run("list as", func(t *testing.T) {
		tags, ok := ListAs[string](rec.Get("tags"))
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, tags)
	})

	t.Run("list as wrong element type", func(t *testing.T) {
		_, ok := ListAs[int64](rec.Get("tags"))
		assert.False(t, ok)
	})

	t.Run("list as non-list", func(t *testing.T) {
		_, ok := ListAs[string](rec.Get("name"))
		assert.False(t, ok)
	})

	t.Run("map as", func(t *testing.T) {
		prices, ok := MapAs[string, float64](rec.Get("prices"))
		require.True(t, ok)
		assert.Equal(t, map[string]float64{"usd": 9.99}, prices)
	})

	t.Run("map as wrong value type", func(t *testing.T) {
		_, ok := MapAs[string, string](rec.Get("prices"))
		assert.False(t, ok)
	})

	t.Run("variant value", func(t *testing.T) {
		id, ok := VariantValue[int64](rec.Get("id"))
		require.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("variant value wrong type", func(t *testing.T) {
		_, ok := VariantValue[string](rec.Get("id"))
		assert.False(t, ok)
	})

	t.Run("variant value non-variant", func(t *testing.T) {
		_, ok := VariantValue[int64](rec.Get("count"))
		assert.False(t, ok)
	})
}
