// Package cleaned provides a declarative data-validation engine.
//
// A schema is an ordered set of named fields, each governed by a validator:
// a primitive scalar with optional constraints, an optional wrapper, a
// union of candidates, a container of elements, an enumeration, or a nested
// schema. Validating an untyped input map produces either a fully-typed,
// immutable Record or a single ValidationError aggregating every failure,
// keyed by field path.
//
// # Defining Schemas
//
// Schemas are built with an explicit, ordered registration API:
//
//	account := cleaned.NewSchema().
//		Field("username", cleaned.String().NotBlank().MinLength(3).Pattern(`[a-zA-Z_]+`)).
//		Field("password", cleaned.String().NotBlank().MinLength(8)).
//		Field("age", cleaned.Int()).
//		MustBuild()
//
// Field order is preserved: error reports and Record introspection follow
// declaration order. A schema is immutable after Build and safe for
// concurrent Validate calls.
//
// # Validating
//
// Validate consumes an already-decoded map (for example the result of JSON
// or YAML unmarshaling) and never short-circuits on the first bad field:
//
//	rec, err := account.Validate(map[string]any{
//		"username": "user",
//		"password": "KJF83h9q3FAS",
//		"age":      "20", // numeric strings convert
//	})
//	if err != nil {
//		verr := err.(*cleaned.ValidationError)
//		for _, f := range verr.Flatten() {
//			log.Printf("%s: %s (%s)", f.Path, f.Message, f.Kind)
//		}
//		return
//	}
//	age := cleaned.MustGet[int64](rec, "age") // 20
//
// # Validators
//
// Built-in validators and their cleaned Go types:
//
//   - String  → string (blank, length, and pattern constraints)
//   - Int     → int64 (inclusive Min/Max bounds)
//   - Float   → float64 (inclusive Min/Max bounds)
//   - Bool    → bool
//   - UUID    → uuid.UUID
//   - Optional(v)  → cleaned value of v, or nil when absent/null
//   - Either(a, b) → Variant tagged with the matching candidate index
//   - ListOf(v)    → []any of cleaned elements
//   - MapOf(k, v)  → map[any]any with cleaned keys and values
//   - EnumOf(...)  → the matched member
//   - Nested(s)    → *Record produced by the inner schema
//   - Expr(v, e)   → cleaned value of v, refined by a CEL predicate
//
// Custom validators implement the Validator interface and report problems
// with NewFailure.
//
// # Error Model
//
// Expected invalid input is reported as a *Failure carrying a message and
// one failure kind tag (required, type_error, blank, min_length,
// max_length, pattern, min, max, no_match, invalid_choice, duplicate_key,
// expr). Container and nested-schema validators report a nested
// *ValidationError instead, addressable by field path segments such as
// "items[2]" or "address.city". Only Schema.Validate surfaces an error to
// the caller, and that error is always a single *ValidationError covering
// every failed field.
//
// Definition-time mistakes (invalid regular expressions or CEL
// expressions, duplicate field names via MustBuild) are contract errors
// and panic.
//
// # Self-Referential Schemas
//
// A nested schema reference may be deferred with NestedFunc, which resolves
// the target exactly once on first use:
//
//	var node *cleaned.Schema
//	node = cleaned.NewSchema().
//		Field("name", cleaned.String().NotBlank()).
//		Field("parent", cleaned.Optional(cleaned.NestedFunc(func() *cleaned.Schema { return node }))).
//		MustBuild()
//
// # Observability
//
// ValidateContext records an OpenTelemetry span and counters through the
// global tracer and meter providers. With the default no-op providers this
// costs nothing; install providers before the first validation to capture
// telemetry.
//
// # Thread Safety
//
// Validators hold only immutable configuration set at definition time, so a
// Schema supports unlimited concurrent Validate calls. The only mutation, a
// deferred NestedFunc resolution, is guarded by sync.Once.
package cleaned
