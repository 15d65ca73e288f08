// Package domainerrors defines the error vocabulary shared across modules.
//
// Services return these instead of raw errors so transport layers can map
// them to HTTP statuses without string matching. Infrastructure facts
// (not found, expired) live in pkg/platform/sentinel; this package is for
// errors with caller-facing meaning.
package domainerrors

import "net/http"

// Code identifies an error category with a stable wire representation.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeValidation  Code = "validation_error"
	CodeNotFound    Code = "not_found"
	CodeUnsupported Code = "unsupported"
	CodeInternal    Code = "internal_error"
	CodeUnavailable Code = "unavailable"
)

// Error carries a code plus a human-readable message. The message is shown to
// callers for client-fault codes and suppressed for internal ones.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New constructs a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap constructs a domain error that preserves an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnsupported:
		return http.StatusBadRequest
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
