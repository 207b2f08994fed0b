package cleaned

import (
	"sync"
)

// NestedValidator delegates a mapping value to an inner schema. On success
// the cleaned value is the inner schema's *Record; on failure the inner
// report is embedded under this field's path rather than flattened, so
// callers can recurse to any depth.
type NestedValidator struct {
	resolve func() *Schema
	once    sync.Once
	schema  *Schema
}

// Nested creates a validator that delegates to schema.
func Nested(schema *Schema) *NestedValidator {
	return &NestedValidator{resolve: func() *Schema { return schema }}
}

// NestedFunc creates a validator whose target schema is resolved lazily,
// exactly once, on first validation. This supports self-referential and
// forward-declared schemas: the closure may return a schema variable that
// is assigned after this call, as long as it is set before the first
// Validate.
func NestedFunc(resolve func() *Schema) *NestedValidator {
	return &NestedValidator{resolve: resolve}
}

func (v *NestedValidator) target() *Schema {
	v.once.Do(func() {
		v.schema = v.resolve()
	})
	return v.schema
}

// Validate implements Validator. Raw must be a map[string]any or an
// already-cleaned *Record, which is re-validated from its map form.
func (v *NestedValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	var m map[string]any
	switch t := raw.(type) {
	case map[string]any:
		m = t
	case *Record:
		m = t.ToMap()
	default:
		return nil, NewFailure(KindTypeError, "expected a mapping, got %T", raw)
	}

	rec, verr := v.target().validate(m)
	if verr != nil {
		return nil, verr
	}
	return rec, nil
}
