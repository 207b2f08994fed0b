package grpcstatus

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zero-day-ai/cleaned"
)

// Status converts a validation report into a codes.InvalidArgument status
// with BadRequest field violations and a nested detail struct.
func Status(verr *cleaned.ValidationError) *status.Status {
	st := status.New(codes.InvalidArgument, "validation failed")

	br := &errdetails.BadRequest{}
	for _, f := range verr.Flatten() {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Path,
			Description: f.Message,
			Reason:      string(f.Kind),
		})
	}

	if tree, err := structpb.NewStruct(errorTree(verr)); err == nil {
		if detailed, err := st.WithDetails(br, tree); err == nil {
			return detailed
		}
	}
	if detailed, err := st.WithDetails(br); err == nil {
		return detailed
	}
	return st
}

// Error converts err into a gRPC status error when it is a validation
// report, and returns it unchanged otherwise. A nil err stays nil.
func Error(err error) error {
	if err == nil {
		return nil
	}
	var verr *cleaned.ValidationError
	if errors.As(err, &verr) {
		return Status(verr).Err()
	}
	return err
}

// errorTree renders the report as nested maps: leaves become
// {"message": ..., "kind": ...} objects, nested reports recurse.
func errorTree(verr *cleaned.ValidationError) map[string]any {
	out := make(map[string]any, verr.Len())
	for _, name := range verr.Fields() {
		if f, ok := verr.Failure(name); ok {
			out[name] = map[string]any{
				"message": f.Message,
				"kind":    string(f.Kind),
			}
			continue
		}
		if nested, ok := verr.Nested(name); ok {
			out[name] = errorTree(nested)
		}
	}
	return out
}
