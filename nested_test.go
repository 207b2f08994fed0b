package cleaned

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressSchema() *Schema {
	return NewSchema().
		Field("city", String().NotBlank()).
		Field("zip", String().Pattern(`\d{5}`)).
		MustBuild()
}

func TestNestedValidator(t *testing.T) {
	nested := Nested(addressSchema())

	t.Run("valid mapping", func(t *testing.T) {
		val, err := nested.Validate(map[string]any{"city": "Berlin", "zip": "10115"}, true)
		require.NoError(t, err)

		rec, ok := val.(*Record)
		require.True(t, ok)
		assert.Equal(t, "Berlin", rec.Get("city"))
	})

	t.Run("already-cleaned record revalidates", func(t *testing.T) {
		first, err := nested.Validate(map[string]any{"city": "Berlin", "zip": "10115"}, true)
		require.NoError(t, err)

		val, err := nested.Validate(first, true)
		require.NoError(t, err)
		assert.Equal(t, first.(*Record).ToMap(), val.(*Record).ToMap())
	})

	t.Run("absent", func(t *testing.T) {
		_, err := nested.Validate(nil, false)
		assertFailure(t, err, KindRequired)
	})

	t.Run("non-mapping raw", func(t *testing.T) {
		_, err := nested.Validate("not a map", true)
		assertFailure(t, err, KindTypeError)
	})

	t.Run("inner report embeds without flattening", func(t *testing.T) {
		_, err := nested.Validate(map[string]any{"city": "", "zip": "x"}, true)
		verr, ok := err.(*ValidationError)
		require.True(t, ok, "expected *ValidationError, got %T", err)

		city, ok := verr.Failure("city")
		require.True(t, ok)
		assert.Equal(t, KindBlank, city.Kind)

		zip, ok := verr.Failure("zip")
		require.True(t, ok)
		assert.Equal(t, KindPattern, zip.Kind)
	})
}

func TestNestedFuncSelfReference(t *testing.T) {
	var node *Schema
	node = NewSchema().
		Field("name", String().NotBlank()).
		Field("parent", Optional(NestedFunc(func() *Schema { return node }))).
		MustBuild()

	rec, err := node.Validate(map[string]any{
		"name": "leaf",
		"parent": map[string]any{
			"name": "root",
		},
	})
	require.NoError(t, err)

	parent := MustGet[*Record](rec, "parent")
	assert.Equal(t, "root", parent.Get("name"))
	assert.Nil(t, parent.Get("parent"))
}

func TestNestedFuncResolvesOnceUnderConcurrency(t *testing.T) {
	resolutions := 0
	var mu sync.Mutex

	target := addressSchema()
	nested := NestedFunc(func() *Schema {
		mu.Lock()
		resolutions++
		mu.Unlock()
		return target
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := nested.Validate(map[string]any{"city": "Berlin", "zip": "10115"}, true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, resolutions)
}
