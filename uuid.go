package cleaned

import (
	"github.com/google/uuid"
)

// UUIDValidator validates RFC 4122 identifiers. The cleaned type is
// uuid.UUID. Conversion accepts uuid.UUID values, 16-byte slices, and the
// textual forms understood by uuid.Parse.
type UUIDValidator struct{}

// UUID creates a UUID validator.
func UUID() *UUIDValidator {
	return &UUIDValidator{}
}

// Validate implements Validator.
func (v *UUIDValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	switch t := raw.(type) {
	case uuid.UUID:
		return t, nil
	case [16]byte:
		return uuid.UUID(t), nil
	case []byte:
		if id, err := uuid.FromBytes(t); err == nil {
			return id, nil
		}
		return nil, NewFailure(KindPattern, "must be a valid UUID")
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return nil, NewFailure(KindPattern, "must be a valid UUID")
		}
		return id, nil
	default:
		return nil, NewFailure(KindTypeError, "expected a UUID, got %T", raw)
	}
}
