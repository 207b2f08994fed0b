package cleaned

import (
	"fmt"
	"reflect"
	"sort"
)

// MapValidator validates mappings, running a key validator against every
// key and a value validator against every value. Entries are processed in
// sorted raw-key order so reports are deterministic. Key failures are
// recorded under the raw key's segment and the entry's value is skipped;
// value failures are recorded under the cleaned key's segment. Two raw keys
// that clean to the same key fail with KindDuplicateKey.
//
// The cleaned type is map[any]any, with keys typed by the key validator.
// The key validator must produce comparable values; that is a contract on
// the schema definition, not a validation failure.
type MapValidator struct {
	key   Validator
	value Validator
}

// MapOf creates a mapping validator with the given key and value
// validators.
func MapOf(key, value Validator) *MapValidator {
	return &MapValidator{key: key, value: value}
}

// Validate implements Validator.
func (v *MapValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	entries, ok := mappingEntries(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected a mapping, got %T", raw)
	}

	out := make(map[any]any, len(entries))
	seen := make(map[any]bool, len(entries))
	errs := newValidationError()

	for _, entry := range entries {
		cleanedKey, err := v.key.Validate(entry.key, true)
		if err != nil {
			errs.add(fmt.Sprintf("[%v]", entry.key), err)
			continue
		}

		segment := fmt.Sprintf("[%v]", cleanedKey)
		if seen[cleanedKey] {
			errs.add(segment, NewFailure(KindDuplicateKey, "duplicate key %v after cleaning", cleanedKey))
			continue
		}
		seen[cleanedKey] = true

		cleanedValue, err := v.value.Validate(entry.value, true)
		if err != nil {
			errs.add(segment, err)
			continue
		}
		out[cleanedKey] = cleanedValue
	}

	if !errs.empty() {
		return nil, errs
	}
	return out, nil
}

type mapEntry struct {
	key   any
	value any
}

// mappingEntries normalizes raw into key/value pairs sorted by the raw
// key's string form.
func mappingEntries(raw any) ([]mapEntry, bool) {
	var entries []mapEntry

	switch t := raw.(type) {
	case map[string]any:
		entries = make([]mapEntry, 0, len(t))
		for k, v := range t {
			entries = append(entries, mapEntry{key: k, value: v})
		}
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Map {
			return nil, false
		}
		entries = make([]mapEntry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, mapEntry{key: iter.Key().Interface(), value: iter.Value().Interface()})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return fmt.Sprint(entries[i].key) < fmt.Sprint(entries[j].key)
	})
	return entries, true
}
