package common

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error is the single error type crossing package boundaries. Code carries
// the kind; Err keeps the store-level cause reachable for errors.Is/As.
type Error struct {
	Code    codes.Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus lets status.Code and status.FromError read the kind.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Message)
}

func InvalidArgument(msg string) error {
	return &Error{Code: codes.InvalidArgument, Message: msg}
}

func Unauthenticated(msg string) error {
	return &Error{Code: codes.Unauthenticated, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Code: codes.NotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Code: codes.AlreadyExists, Message: msg}
}

func Internal(msg string, err error) error {
	return &Error{Code: codes.Internal, Message: msg, Err: err}
}

// Wrap passes kinded errors through untouched and turns anything else into
// an Internal error.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(msg, err)
}

// KindOf reports the code of err. Plain errors count as Internal.
func KindOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Internal
}

func IsNotFound(err error) bool {
	return KindOf(err) == codes.NotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == codes.AlreadyExists
}

// KindName is the taxonomy name written into failure envelopes.
func KindName(code codes.Code) string {
	switch code {
	case codes.InvalidArgument:
		return "InvalidArgument"
	case codes.Unauthenticated:
		return "Unauthenticated"
	case codes.NotFound:
		return "NotFound"
	case codes.AlreadyExists:
		return "Conflict"
	default:
		return "Internal"
	}
}

func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
