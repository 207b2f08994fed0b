package cleaned

import "fmt"

// Record is the typed, immutable output of a successful schema validation.
// It owns its values independently of the raw input and has no reference
// back to the schema that produced it.
type Record struct {
	names  []string
	values map[string]any
}

// Get returns the cleaned value of the named field, or nil when the field
// is not declared. Optional fields with no value also return nil.
func (r *Record) Get(name string) any {
	return r.values[name]
}

// Fields returns the field names in declaration order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// ToMap returns a fresh map of the cleaned values. Mutating it does not
// affect the record.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Get returns the named field's value narrowed to T. The second return is
// false when the field is absent, holds nil, or holds a different type.
func Get[T any](r *Record, name string) (T, bool) {
	v, ok := r.values[name]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// MustGet is like Get but panics when the field does not hold a T. Use it
// when the schema guarantees the type.
func MustGet[T any](r *Record, name string) T {
	t, ok := Get[T](r, name)
	if !ok {
		var zero T
		panic(fmt.Sprintf("cleaned: field %q does not hold %T", name, zero))
	}
	return t
}

// ListAs narrows a ListOf cleaned value ([]any) to a typed slice. The
// second return is false when v is not []any or any element is not a T.
func ListAs[T any](v any) ([]T, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]T, len(items))
	for i, item := range items {
		t, ok := item.(T)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

// MapAs narrows a MapOf cleaned value (map[any]any) to typed keys and
// values. The second return is false when v is not map[any]any or any entry
// does not hold a K/V pair.
func MapAs[K comparable, V any](v any) (map[K]V, bool) {
	entries, ok := v.(map[any]any)
	if !ok {
		return nil, false
	}
	out := make(map[K]V, len(entries))
	for key, value := range entries {
		k, ok := key.(K)
		if !ok {
			return nil, false
		}
		val, ok := value.(V)
		if !ok {
			return nil, false
		}
		out[k] = val
	}
	return out, true
}

// VariantValue narrows an Either cleaned value to the candidate type T. The
// second return is false when v is not a Variant or its value is not a T.
func VariantValue[T any](v any) (T, bool) {
	variant, ok := v.(Variant)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := variant.Value.(T)
	return t, ok
}
