package cleaned

// Validator checks and converts one raw input value into its cleaned form.
//
// Implementations hold only immutable configuration set at definition time,
// carry no per-call state, and are shared read-only across every validate
// call of the schemas that declare them.
type Validator interface {
	// Validate cleans raw. present reports whether the field existed in the
	// input at all; validators that do not accept absence must fail with
	// KindRequired when present is false, ignoring raw.
	//
	// The returned error is either a *Failure (a single leaf problem) or a
	// *ValidationError (a nested report from a container or nested schema).
	// Expected invalid input never produces any other error type.
	Validate(raw any, present bool) (any, error)
}
