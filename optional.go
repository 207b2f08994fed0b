package cleaned

// OptionalValidator wraps another validator and accepts absence. An absent
// or explicitly null raw value cleans to nil; anything else is delegated to
// the wrapped validator and its result propagated unchanged.
type OptionalValidator struct {
	inner Validator
}

// Optional makes inner accept absent and null values.
func Optional(inner Validator) *OptionalValidator {
	return &OptionalValidator{inner: inner}
}

// Validate implements Validator.
func (v *OptionalValidator) Validate(raw any, present bool) (any, error) {
	if !present || raw == nil {
		return nil, nil
	}
	return v.inner.Validate(raw, true)
}
