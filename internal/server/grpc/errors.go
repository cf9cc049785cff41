package grpc

import (
	"errors"

	"github.com/gamezone/gamezone/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError turns a service error into a gRPC status. Only the messages of
// the known sentinel classes reach the client.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, common.ErrUnauthenticated.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrPageOutOfRange):
		return status.Error(codes.OutOfRange, common.ErrPageOutOfRange.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
