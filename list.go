package cleaned

import (
	"fmt"
	"reflect"
)

// ListValidator validates sequences, running one element validator against
// every element. Element failures are collected rather than
// short-circuited and reported under bracketed index segments such as
// "[2]". The cleaned type is []any, same length and order as the input.
type ListValidator struct {
	elem   Validator
	minLen *int
	maxLen *int
}

// ListOf creates a sequence validator with the given element validator.
func ListOf(elem Validator) *ListValidator {
	return &ListValidator{elem: elem}
}

// MinLen requires at least n elements.
func (v *ListValidator) MinLen(n int) *ListValidator {
	v.minLen = &n
	return v
}

// MaxLen allows at most n elements.
func (v *ListValidator) MaxLen(n int) *ListValidator {
	v.maxLen = &n
	return v
}

// Validate implements Validator.
func (v *ListValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	items, ok := sequenceItems(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected a sequence, got %T", raw)
	}

	if v.minLen != nil && len(items) < *v.minLen {
		return nil, NewFailure(KindMinLength, "must contain at least %d elements", *v.minLen)
	}
	if v.maxLen != nil && len(items) > *v.maxLen {
		return nil, NewFailure(KindMaxLength, "must contain at most %d elements", *v.maxLen)
	}

	out := make([]any, 0, len(items))
	errs := newValidationError()
	for i, item := range items {
		val, err := v.elem.Validate(item, true)
		if err != nil {
			errs.add(fmt.Sprintf("[%d]", i), err)
			continue
		}
		out = append(out, val)
	}

	if !errs.empty() {
		return nil, errs
	}
	return out, nil
}

// sequenceItems normalizes raw into a []any. Strings and byte slices are
// not sequences here even though they are slices to reflect.
func sequenceItems(raw any) ([]any, bool) {
	switch t := raw.(type) {
	case []any:
		return t, true
	case string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
