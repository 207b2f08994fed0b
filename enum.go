package cleaned

import (
	"fmt"
	"reflect"
	"strings"
)

// EnumValidator accepts a value equal to one member of a fixed set. The
// comparison is by underlying primitive value: numeric raws are coerced to
// the member type's kind before matching, so a JSON float64 3 matches the
// int member 3. The cleaned type is T.
type EnumValidator[T comparable] struct {
	choices []T
}

// EnumOf creates an enumeration validator over the given members, listed in
// messages in declaration order.
func EnumOf[T comparable](choices ...T) *EnumValidator[T] {
	return &EnumValidator[T]{choices: choices}
}

// Validate implements Validator.
func (v *EnumValidator[T]) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	val, ok := coerceMember[T](raw)
	if ok {
		for _, c := range v.choices {
			if val == c {
				return c, nil
			}
		}
	}

	return nil, NewFailure(KindInvalidChoice, "must be one of %s", v.permitted())
}

func (v *EnumValidator[T]) permitted() string {
	parts := make([]string, len(v.choices))
	for i, c := range v.choices {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// coerceMember converts raw to the member type by its underlying kind.
func coerceMember[T comparable](raw any) (T, bool) {
	var zero T
	if direct, ok := raw.(T); ok {
		return direct, true
	}

	target := reflect.TypeOf(zero)
	if target == nil {
		return zero, false
	}

	var primitive any
	var ok bool
	switch target.Kind() {
	case reflect.String:
		primitive, ok = coerceString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		primitive, ok = coerceInt(raw)
	case reflect.Float32, reflect.Float64:
		primitive, ok = coerceFloat(raw)
	case reflect.Bool:
		primitive, ok = coerceBool(raw)
	}
	if !ok {
		return zero, false
	}

	rv := reflect.ValueOf(primitive)
	if !rv.Type().ConvertibleTo(target) {
		return zero, false
	}
	converted, ok := rv.Convert(target).Interface().(T)
	return converted, ok
}
