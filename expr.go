package cleaned

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// ExprValidator wraps another validator and refines its cleaned value with
// a CEL predicate. The expression sees the cleaned value bound as "value"
// and must evaluate to a boolean; a false result or an evaluation error
// fails with KindExpr. A nil cleaned value (an absent Optional inner) skips
// the predicate. Expressions are compiled once at definition time.
type ExprValidator struct {
	inner   Validator
	source  string
	program cel.Program
}

// Expr refines inner with a CEL predicate, for constraints the built-in
// options cannot express:
//
//	even := cleaned.Expr(cleaned.Int(), "value % 2 == 0")
//
// An invalid or non-boolean expression is a programming error and panics;
// use CompileExpr to handle untrusted expressions.
func Expr(inner Validator, expression string) *ExprValidator {
	v, err := CompileExpr(inner, expression)
	if err != nil {
		panic(err)
	}
	return v
}

// CompileExpr is the error-returning form of Expr, for expressions that
// arrive from configuration rather than source code.
func CompileExpr(inner Validator, expression string) (*ExprValidator, error) {
	env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("cleaned: creating expression environment: %w", err)
	}

	ast, iss := env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("cleaned: invalid expression %q: %w", expression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("cleaned: expression %q must evaluate to a boolean, not %s", expression, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("cleaned: compiling expression %q: %w", expression, err)
	}

	return &ExprValidator{inner: inner, source: expression, program: program}, nil
}

// Validate implements Validator.
func (v *ExprValidator) Validate(raw any, present bool) (any, error) {
	val, err := v.inner.Validate(raw, present)
	if err != nil {
		return nil, err
	}
	if val == nil {
		// An Optional inner produced no value; there is nothing to refine.
		return nil, nil
	}

	out, _, err := v.program.Eval(map[string]any{"value": val})
	if err != nil {
		return nil, NewFailure(KindExpr, "must satisfy %s: %v", v.source, err)
	}
	if ok, isBool := out.Value().(bool); !isBool || !ok {
		return nil, NewFailure(KindExpr, "must satisfy %s", v.source)
	}

	return val, nil
}
