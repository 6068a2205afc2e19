package util

import (
	"errors"
	"fmt"
)

// Error codes carried to clients alongside the HTTP status. They follow the
// google.rpc canonical code names the product's earlier backend emitted.
const (
	CodeUnauthenticated    = "unauthenticated"
	CodeInvalidArgument    = "invalid-argument"
	CodeNotFound           = "not-found"
	CodeFailedPrecondition = "failed-precondition"
	CodePermissionDenied   = "permission-denied"
	CodeAlreadyExists      = "already-exists"
	CodeInternal           = "internal"
)

// AppError is a coded, user-presentable error. Services return it for
// expected failures; anything else is wrapped as internal at the boundary.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func InvalidArgument(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func FailedPrecondition(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected error, keeping the original message attached.
func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: err.Error()}
}

// AsAppError unwraps err to an *AppError if there is one in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSessionNotFound    = errors.New("flashcard session not found")
	ErrSessionComplete    = errors.New("flashcard session already complete")
)
