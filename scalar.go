package cleaned

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	blankPattern     = regexp.MustCompile(`^\s*$`)
	linebreakPattern = regexp.MustCompile(`\r\n|\r|\n`)
)

// StringValidator validates string fields. The cleaned type is string.
//
// Conversion accepts string and UTF-8 []byte raws. By default the value is
// stripped of surrounding whitespace and linebreaks are collapsed to single
// spaces; NoStrip and Multiline opt out. Constraints run in a fixed order
// so reports are deterministic: type, blank, length, pattern. A blank value
// that is allowed skips the remaining checks.
type StringValidator struct {
	blank      bool
	strip      bool
	multiline  bool
	minLength  int
	maxLength  int
	pattern    *regexp.Regexp
	rawPattern string
}

// String creates a string validator. Blank values are allowed until
// NotBlank is applied.
func String() *StringValidator {
	return &StringValidator{blank: true, strip: true, minLength: -1, maxLength: -1}
}

// NotBlank rejects empty and whitespace-only values with KindBlank.
func (v *StringValidator) NotBlank() *StringValidator {
	v.blank = false
	return v
}

// MinLength requires at least n characters (counted in runes).
func (v *StringValidator) MinLength(n int) *StringValidator {
	v.minLength = n
	return v
}

// MaxLength allows at most n characters (counted in runes).
func (v *StringValidator) MaxLength(n int) *StringValidator {
	v.maxLength = n
	return v
}

// Pattern requires the whole value to match expr. The expression is
// compiled anchored at both ends; an invalid expression panics, as with
// regexp.MustCompile.
func (v *StringValidator) Pattern(expr string) *StringValidator {
	v.pattern = regexp.MustCompile(`^(?:` + expr + `)$`)
	v.rawPattern = expr
	return v
}

// NoStrip keeps surrounding whitespace instead of trimming it.
func (v *StringValidator) NoStrip() *StringValidator {
	v.strip = false
	return v
}

// Multiline preserves linebreaks instead of collapsing them to spaces.
func (v *StringValidator) Multiline() *StringValidator {
	v.multiline = true
	return v
}

// Validate implements Validator.
func (v *StringValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	s, ok := coerceString(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected a string, got %T", raw)
	}

	if v.strip {
		s = strings.TrimSpace(s)
	}
	if !v.multiline {
		s = linebreakPattern.ReplaceAllString(s, " ")
	}

	if blankPattern.MatchString(s) {
		if v.blank {
			// Blank is an accepted terminal state: remaining constraints
			// describe non-blank content.
			return s, nil
		}
		return nil, NewFailure(KindBlank, "this field cannot be blank")
	}

	if n := utf8.RuneCountInString(s); v.minLength >= 0 && n < v.minLength {
		return nil, NewFailure(KindMinLength, "length must be at least %d", v.minLength)
	} else if v.maxLength >= 0 && n > v.maxLength {
		return nil, NewFailure(KindMaxLength, "length must be at most %d", v.maxLength)
	}

	if v.pattern != nil && !v.pattern.MatchString(s) {
		return nil, NewFailure(KindPattern, "must match pattern %s", v.rawPattern)
	}

	return s, nil
}

// IntValidator validates integer fields. The cleaned type is int64.
// Conversion accepts Go integer kinds, floats with no fractional part, and
// base-10 numeric strings.
type IntValidator struct {
	min *int64
	max *int64
}

// Int creates an integer validator without bounds.
func Int() *IntValidator {
	return &IntValidator{}
}

// Min sets the inclusive lower bound.
func (v *IntValidator) Min(n int64) *IntValidator {
	v.min = &n
	return v
}

// Max sets the inclusive upper bound.
func (v *IntValidator) Max(n int64) *IntValidator {
	v.max = &n
	return v
}

// Validate implements Validator.
func (v *IntValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	n, ok := coerceInt(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected an integer, got %T", raw)
	}

	if v.min != nil && n < *v.min {
		return nil, NewFailure(KindMin, "must be at least %d", *v.min)
	}
	if v.max != nil && n > *v.max {
		return nil, NewFailure(KindMax, "must be at most %d", *v.max)
	}

	return n, nil
}

// FloatValidator validates floating-point fields. The cleaned type is
// float64. Conversion accepts Go numeric kinds and numeric strings.
type FloatValidator struct {
	min *float64
	max *float64
}

// Float creates a float validator without bounds.
func Float() *FloatValidator {
	return &FloatValidator{}
}

// Min sets the inclusive lower bound.
func (v *FloatValidator) Min(n float64) *FloatValidator {
	v.min = &n
	return v
}

// Max sets the inclusive upper bound.
func (v *FloatValidator) Max(n float64) *FloatValidator {
	v.max = &n
	return v
}

// Validate implements Validator.
func (v *FloatValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	f, ok := coerceFloat(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected a number, got %T", raw)
	}

	if v.min != nil && f < *v.min {
		return nil, NewFailure(KindMin, "must be at least %v", *v.min)
	}
	if v.max != nil && f > *v.max {
		return nil, NewFailure(KindMax, "must be at most %v", *v.max)
	}

	return f, nil
}

// BoolValidator validates boolean fields. The cleaned type is bool.
// Conversion accepts bool and the strconv.ParseBool string forms.
type BoolValidator struct{}

// Bool creates a boolean validator.
func Bool() *BoolValidator {
	return &BoolValidator{}
}

// Validate implements Validator.
func (v *BoolValidator) Validate(raw any, present bool) (any, error) {
	if !present {
		return nil, requiredFailure()
	}

	b, ok := coerceBool(raw)
	if !ok {
		return nil, NewFailure(KindTypeError, "expected a boolean, got %T", raw)
	}

	return b, nil
}
