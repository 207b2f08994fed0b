package cleaned

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDValidator(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name    string
		raw     any
		present bool
		want    any
		kind    Kind
	}{
		{name: "canonical string", raw: id.String(), present: true, want: id},
		{name: "uuid value", raw: id, present: true, want: id},
		{name: "sixteen byte array", raw: [16]byte(id), present: true, want: id},
		{name: "sixteen byte slice", raw: id[:], present: true, want: id},
		{name: "malformed string", raw: "not-a-uuid", present: true, kind: KindPattern},
		{name: "short byte slice", raw: []byte{1, 2, 3}, present: true, kind: KindPattern},
		{name: "wrong type", raw: 42, present: true, kind: KindTypeError},
		{name: "absent", present: false, kind: KindRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := UUID().Validate(tt.raw, tt.present)
			if tt.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, val)
				return
			}
			assertFailure(t, err, tt.kind)
		})
	}
}
