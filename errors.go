package cleaned

import (
	"strings"
)

// ValidationError is the aggregated failure report for one validate call.
// It maps each failed field-path segment to either a leaf *Failure or a
// nested *ValidationError (for nested schemas and containers), preserving
// the order in which failures were recorded. It is constructed once per
// failed validation and is immutable afterwards.
type ValidationError struct {
	names   []string
	entries map[string]error
}

// PathFailure is one entry of a flattened error report: the full
// dot/bracket field path, the message, and the failure kind.
type PathFailure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

func newValidationError() *ValidationError {
	return &ValidationError{entries: make(map[string]error)}
}

// add records err (a *Failure or *ValidationError) under the given path
// segment. Internal: only called during a single validate traversal.
func (e *ValidationError) add(segment string, err error) {
	if _, exists := e.entries[segment]; !exists {
		e.names = append(e.names, segment)
	}
	e.entries[segment] = err
}

func (e *ValidationError) empty() bool {
	return len(e.names) == 0
}

// Fields returns the failed top-level path segments in the order they were
// recorded, which for schema validation is field declaration order.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Len returns the number of top-level entries in the report.
func (e *ValidationError) Len() int {
	return len(e.names)
}

// Failure returns the leaf failure recorded for the given segment. The
// second return is false when the segment is absent or holds a nested
// report instead.
func (e *ValidationError) Failure(segment string) (*Failure, bool) {
	f, ok := e.entries[segment].(*Failure)
	return f, ok
}

// Nested returns the nested report recorded for the given segment. The
// second return is false when the segment is absent or holds a leaf
// failure instead.
func (e *ValidationError) Nested(segment string) (*ValidationError, bool) {
	n, ok := e.entries[segment].(*ValidationError)
	return n, ok
}

// Flatten walks the report depth-first and returns every failure as a
// (path, message, kind) triple. Paths join field names with dots and keep
// index/key segments bracketed, e.g. "address.city" or "items[2]".
func (e *ValidationError) Flatten() []PathFailure {
	var out []PathFailure
	e.flattenInto("", &out)
	return out
}

func (e *ValidationError) flattenInto(prefix string, out *[]PathFailure) {
	for _, name := range e.names {
		path := joinPath(prefix, name)
		switch v := e.entries[name].(type) {
		case *Failure:
			*out = append(*out, PathFailure{Path: path, Message: v.Message, Kind: v.Kind})
		case *ValidationError:
			v.flattenInto(path, out)
		}
	}
}

// Error renders the flattened report as a single line.
func (e *ValidationError) Error() string {
	flat := e.Flatten()
	if len(flat) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(flat))
	for i, f := range flat {
		parts[i] = f.Path + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	if strings.HasPrefix(segment, "[") {
		return prefix + segment
	}
	return prefix + "." + segment
}
