package errors

import (
	goerrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts a service error into a gRPC status error.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var accessErr *EmailAccessError
	switch {
	case goerrors.As(err, &accessErr):
		// Forbidden and absent emails must look the same on the wire.
		return status.Error(codes.NotFound, accessErr.Error())
	case goerrors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case goerrors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case goerrors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case goerrors.Is(err, ErrPersonaNotFound), goerrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case goerrors.Is(err, ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "store unavailable, retry later")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
