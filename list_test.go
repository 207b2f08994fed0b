package cleaned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListValidator(t *testing.T) {
	t.Run("valid elements in order", func(t *testing.T) {
		val, err := ListOf(Int()).Validate([]any{1, "2", 3.0}, true)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, val)
	})

	t.Run("typed slices are sequences", func(t *testing.T) {
		val, err := ListOf(String()).Validate([]string{"a", "b"}, true)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, val)
	})

	t.Run("empty sequence is valid", func(t *testing.T) {
		val, err := ListOf(Int()).Validate([]any{}, true)
		require.NoError(t, err)
		assert.Equal(t, []any{}, val)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := ListOf(Int()).Validate(nil, false)
		assertFailure(t, err, KindRequired)
	})

	t.Run("non-sequence raw", func(t *testing.T) {
		_, err := ListOf(Int()).Validate(42, true)
		assertFailure(t, err, KindTypeError)
	})

	t.Run("strings are not sequences", func(t *testing.T) {
		_, err := ListOf(String()).Validate("abc", true)
		assertFailure(t, err, KindTypeError)
	})

	t.Run("element failures collected at index segments", func(t *testing.T) {
		_, err := ListOf(Int()).Validate([]any{1, "x", 3, false}, true)
		require.Error(t, err)
		verr, ok := err.(*ValidationError)
		require.True(t, ok, "expected *ValidationError, got %T", err)

		assert.Equal(t, []string{"[1]", "[3]"}, verr.Fields())
		f, ok := verr.Failure("[1]")
		require.True(t, ok)
		assert.Equal(t, KindTypeError, f.Kind)
	})

	t.Run("length bounds", func(t *testing.T) {
		_, err := ListOf(Int()).MinLen(2).Validate([]any{1}, true)
		assertFailure(t, err, KindMinLength)

		_, err = ListOf(Int()).MaxLen(1).Validate([]any{1, 2}, true)
		assertFailure(t, err, KindMaxLength)
	})
}
