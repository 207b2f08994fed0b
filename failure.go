package cleaned

import "fmt"

// Kind tags a Failure with the category of constraint that was violated.
// Kinds are stable identifiers intended for programmatic handling and API
// responses; messages are for humans and may change.
type Kind string

// Failure kinds reported by the built-in validators.
const (
	// KindRequired indicates a non-optional field was absent from the input.
	KindRequired Kind = "required"

	// KindTypeError indicates the raw value's primitive kind did not match.
	KindTypeError Kind = "type_error"

	// KindBlank indicates an empty or whitespace-only string where blank
	// values are not allowed.
	KindBlank Kind = "blank"

	// KindMinLength indicates a string or sequence shorter than allowed.
	KindMinLength Kind = "min_length"

	// KindMaxLength indicates a string or sequence longer than allowed.
	KindMaxLength Kind = "max_length"

	// KindPattern indicates a string that did not match the declared pattern.
	KindPattern Kind = "pattern"

	// KindMin indicates a numeric value below the inclusive lower bound.
	KindMin Kind = "min"

	// KindMax indicates a numeric value above the inclusive upper bound.
	KindMax Kind = "max"

	// KindNoMatch indicates that no candidate of an Either validator accepted
	// the value.
	KindNoMatch Kind = "no_match"

	// KindInvalidChoice indicates a value outside an enumerated member set.
	KindInvalidChoice Kind = "invalid_choice"

	// KindDuplicateKey indicates two distinct raw map keys that cleaned to
	// the same key.
	KindDuplicateKey Kind = "duplicate_key"

	// KindExpr indicates a value rejected by an Expr predicate.
	KindExpr Kind = "expr"
)

// Failure describes a single validation problem: one kind tag plus a
// human-readable message. Failure implements error so validators can return
// it directly.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// NewFailure creates a Failure with the given kind and formatted message.
// Custom validators use this to report problems in the same shape as the
// built-ins.
func NewFailure(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error returns the failure message.
func (f *Failure) Error() string {
	return f.Message
}

func requiredFailure() *Failure {
	return NewFailure(KindRequired, "this field is required")
}
