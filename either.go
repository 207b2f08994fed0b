package cleaned

import (
	"fmt"
	"strings"
)

// Variant is the cleaned value of an Either validator: the cleaned value of
// the first candidate that accepted the raw input, tagged with that
// candidate's index so callers can branch on the matched alternative.
type Variant struct {
	// Alt is the zero-based index of the candidate that matched.
	Alt int

	// Value is the cleaned value produced by that candidate.
	Value any
}

// EitherValidator tries an ordered list of candidate validators and accepts
// the first success. When every candidate rejects the value it fails with
// KindNoMatch and a message enumerating each candidate's reason.
type EitherValidator struct {
	candidates []Validator
}

// Either creates a union validator over the given candidates, tried in
// order.
func Either(candidates ...Validator) *EitherValidator {
	return &EitherValidator{candidates: candidates}
}

// Validate implements Validator.
func (v *EitherValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	// An already-cleaned Variant round-trips through its inner value. The
	// tagged candidate is tried first so Alt stays stable across
	// re-validation.
	if variant, ok := raw.(Variant); ok {
		if variant.Alt >= 0 && variant.Alt < len(v.candidates) {
			if val, err := v.candidates[variant.Alt].Validate(variant.Value, true); err == nil {
				return Variant{Alt: variant.Alt, Value: val}, nil
			}
		}
		raw = variant.Value
	}

	reasons := make([]string, 0, len(v.candidates))
	for i, c := range v.candidates {
		val, err := c.Validate(raw, true)
		if err == nil {
			return Variant{Alt: i, Value: val}, nil
		}
		reasons = append(reasons, fmt.Sprintf("[%d] %s", i, branchReason(err)))
	}

	return nil, NewFailure(KindNoMatch, "no candidate matched: %s", strings.Join(reasons, "; "))
}

// branchReason renders a candidate's rejection without the "validation
// failed:" prefix a nested report would add.
func branchReason(err error) string {
	if verr, ok := err.(*ValidationError); ok {
		flat := verr.Flatten()
		parts := make([]string, len(flat))
		for i, f := range flat {
			parts[i] = f.Path + ": " + f.Message
		}
		return strings.Join(parts, ", ")
	}
	return err.Error()
}
