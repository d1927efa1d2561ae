// Package grpcx maps failed outcomes to gRPC statuses, branching on the
// error-code convention.
package grpcx

import (
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/code"
)

// StatusCode resolves a parsed error code (possibly empty) to a gRPC
// status code. Unknown and empty codes map to Internal.
func StatusCode(c string) gcodes.Code {
	switch c {
	case "BAD_REQUEST", "VALIDATION_FAILED":
		return gcodes.InvalidArgument
	case "UNAUTHORIZED":
		return gcodes.Unauthenticated
	case "FORBIDDEN":
		return gcodes.PermissionDenied
	case "NOT_FOUND":
		return gcodes.NotFound
	case "CONFLICT":
		return gcodes.AlreadyExists
	case "TIMEOUT":
		return gcodes.DeadlineExceeded
	case "UNAVAILABLE":
		return gcodes.Unavailable
	default:
		return gcodes.Internal
	}
}

// ErrorOf converts a valued outcome to a gRPC error: nil on success, a
// *status.Status error on failure with the code resolved through the
// convention and the message stripped of its code prefix.
func ErrorOf[T any](r rop.Result[T]) error {
	if r.IsSuccess() {
		return nil
	}
	return statusErr(r.Err())
}

// ErrorOfUnit is ErrorOf for no-value outcomes.
func ErrorOfUnit(u rop.Unit) error {
	if u.IsSuccess() {
		return nil
	}
	return statusErr(u.Err())
}

func statusErr(errText string) error {
	c, msg := code.Parse(errText)
	return gstatus.Error(StatusCode(c), msg)
}
