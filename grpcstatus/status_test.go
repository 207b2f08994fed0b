package grpcstatus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zero-day-ai/cleaned"
	"github.com/zero-day-ai/cleaned/grpcstatus"
)

func signupError(t *testing.T) *cleaned.ValidationError {
	t.Helper()

	signup := cleaned.NewSchema().
		Field("username", cleaned.String().NotBlank().MinLength(3)).
		Field("address", cleaned.Nested(cleaned.NewSchema().
			Field("city", cleaned.String().NotBlank()).
			Field("zip", cleaned.String().Pattern(`\d{5}`)).
			MustBuild())).
		MustBuild()

	_, err := signup.Validate(map[string]any{
		"username": "ab",
		"address":  map[string]any{"city": "Berlin", "zip": "bad"},
	})
	require.Error(t, err)

	verr, ok := err.(*cleaned.ValidationError)
	require.True(t, ok)
	return verr
}

func TestStatus(t *testing.T) {
	st := grpcstatus.Status(signupError(t))

	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "validation failed", st.Message())

	var br *errdetails.BadRequest
	var tree *structpb.Struct
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.BadRequest:
			br = d
		case *structpb.Struct:
			tree = d
		}
	}

	t.Run("bad request violations", func(t *testing.T) {
		require.NotNil(t, br)
		require.Len(t, br.FieldViolations, 2)

		username := br.FieldViolations[0]
		assert.Equal(t, "username", username.Field)
		assert.Equal(t, string(cleaned.KindMinLength), username.Reason)
		assert.Equal(t, "length must be at least 3", username.Description)

		zip := br.FieldViolations[1]
		assert.Equal(t, "address.zip", zip.Field)
		assert.Equal(t, string(cleaned.KindPattern), zip.Reason)
	})

	t.Run("nested detail struct", func(t *testing.T) {
		require.NotNil(t, tree)
		fields := tree.AsMap()

		username, ok := fields["username"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(cleaned.KindMinLength), username["kind"])

		address, ok := fields["address"].(map[string]any)
		require.True(t, ok)
		zip, ok := address["zip"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(cleaned.KindPattern), zip["kind"])
	})
}

func TestError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, grpcstatus.Error(nil))
	})

	t.Run("validation error becomes a status error", func(t *testing.T) {
		err := grpcstatus.Error(signupError(t))
		require.Error(t, err)

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("wrapped validation error is unwrapped", func(t *testing.T) {
		wrapped := errors.Join(errors.New("request rejected"), signupError(t))

		err := grpcstatus.Error(wrapped)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, grpcstatus.Error(plain))
	})
}
