// Package grpcstatus converts validation reports into gRPC statuses.
//
// A *cleaned.ValidationError becomes a codes.InvalidArgument status
// carrying two details: an errdetails.BadRequest with one field violation
// per flattened failure, and a structpb.Struct preserving the nested error
// tree for clients that want to recurse the report the same way servers do.
//
// # Usage
//
// In a gRPC handler:
//
//	rec, err := accountSchema.ValidateContext(ctx, req.GetFields())
//	if err != nil {
//		return nil, grpcstatus.Error(err)
//	}
//
// Or when the status itself is needed:
//
//	st := grpcstatus.Status(err.(*cleaned.ValidationError))
//	for _, d := range st.Details() {
//		if br, ok := d.(*errdetails.BadRequest); ok {
//			// per-field violations with paths like "address.city"
//		}
//	}
//
// # Error Handling
//
// Error passes non-validation errors through unchanged, so it can wrap any
// handler return path.
package grpcstatus
