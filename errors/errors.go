package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrInvalidToken      = fmt.Errorf("invalid or expired token")
	ErrPersistence       = fmt.Errorf("persistence failure")
	ErrInvalidPayload    = fmt.Errorf("invalid payload")
	ErrOperationFailed   = fmt.Errorf("operation failed")
	ErrUnknownEvent      = fmt.Errorf("unknown event")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrRateLimited       = fmt.Errorf("rate limit exceeded")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
)

// Wire codes sent back to websocket clients inside error acks.
const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeResourceExhausted  = "RESOURCE_EXHAUSTED"
	CodeInternal           = "INTERNAL"
)

// Code maps an error returned by the relay to its wire code.
// Anything not part of the taxonomy is reported as INTERNAL.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrUnauthorized), stderrors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case stderrors.Is(err, ErrPersistence):
		return CodePersistenceFailure
	case stderrors.Is(err, ErrInvalidPayload), stderrors.Is(err, ErrUnknownEvent):
		return CodeInvalidArgument
	case stderrors.Is(err, ErrRateLimited):
		return CodeResourceExhausted
	default:
		return CodeInternal
	}
}

// Message returns the text exposed to clients. Internal failures are not
// leaked, only their generic sentinel.
func Message(err error) string {
	if Code(err) == CodeInternal {
		return ErrOperationFailed.Error()
	}
	return err.Error()
}

// MapToGRPCError converts a relay error into a gRPC status error.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch Code(err) {
	case CodeUnauthorized:
		return status.Error(codes.Unauthenticated, err.Error())
	case CodeInvalidArgument:
		return status.Error(codes.InvalidArgument, err.Error())
	case CodePersistenceFailure:
		return status.Error(codes.Unavailable, err.Error())
	case CodeResourceExhausted:
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, ErrOperationFailed.Error())
	}
}
