package cleaned

import (
	"context"
	"fmt"
)

// FieldSpec binds a field name to its validator. Declaration order is
// significant: validation, error reports, and Record introspection all
// follow it.
type FieldSpec struct {
	Name      string
	Validator Validator
}

// SchemaBuilder accumulates ordered field registrations. Builders are not
// safe for concurrent use; the Schema produced by Build is.
type SchemaBuilder struct {
	fields []FieldSpec
}

// NewSchema starts a schema definition.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Field appends a named field binding and returns the builder for chaining.
func (b *SchemaBuilder) Field(name string, v Validator) *SchemaBuilder {
	b.fields = append(b.fields, FieldSpec{Name: name, Validator: v})
	return b
}

// Build freezes the definition into an immutable Schema. Empty names,
// nil validators, and duplicate field names are definition errors.
func (b *SchemaBuilder) Build() (*Schema, error) {
	seen := make(map[string]bool, len(b.fields))
	for _, f := range b.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("cleaned: field with empty name")
		}
		if f.Validator == nil {
			return nil, fmt.Errorf("cleaned: field %q has a nil validator", f.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("cleaned: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}

	fields := make([]FieldSpec, len(b.fields))
	copy(fields, b.fields)
	return &Schema{fields: fields}, nil
}

// MustBuild is like Build but panics on a definition error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Schema is an ordered, named set of field-validator bindings describing a
// record shape. It is immutable after Build and safe for unlimited
// concurrent Validate calls.
type Schema struct {
	fields []FieldSpec
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Validate checks every declared field of raw and either returns the
// cleaned Record or a single *ValidationError covering every failed field.
// A nil raw map is treated as all fields absent. Undeclared keys in raw are
// ignored.
func (s *Schema) Validate(raw map[string]any) (*Record, error) {
	return s.ValidateContext(context.Background(), raw)
}

// ValidateContext is Validate with an OpenTelemetry span and counters
// recorded against ctx.
func (s *Schema) ValidateContext(ctx context.Context, raw map[string]any) (*Record, error) {
	ctx, finish := startValidation(ctx, len(s.fields))

	rec, verr := s.validate(raw)
	finish(ctx, verr)

	if verr != nil {
		return nil, verr
	}
	return rec, nil
}

// validate runs the single-pass traversal: every field is checked
// independently in declaration order, successes and failures collected in
// parallel, and no field short-circuits another.
func (s *Schema) validate(raw map[string]any) (*Record, *ValidationError) {
	names := make([]string, 0, len(s.fields))
	values := make(map[string]any, len(s.fields))
	errs := newValidationError()

	for _, f := range s.fields {
		rawValue, present := raw[f.Name]
		val, err := f.Validator.Validate(rawValue, present)
		if err != nil {
			errs.add(f.Name, err)
			continue
		}
		names = append(names, f.Name)
		values[f.Name] = val
	}

	if !errs.empty() {
		return nil, errs
	}
	return &Record{names: names, values: values}, nil
}
