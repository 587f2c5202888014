// Package apperrors defines the tagged error kinds shared by the mock backend,
// the HTTP gateway and the production-facing services.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is a machine-readable error code carried on the wire as "code"
type Kind string

const (
	KindValidation         Kind = "VALIDATION_ERROR"
	KindBadRequest         Kind = "BAD_REQUEST"
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidMobile      Kind = "INVALID_MOBILE"
	KindInvalidCredentials Kind = "INVALID_OTP"
	KindDuplicateEmail     Kind = "EMAIL_EXISTS"
	KindDuplicateMobile    Kind = "MOBILE_EXISTS"
	KindInsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
	KindPaymentMethod      Kind = "PAYMENT_METHOD_UNAVAILABLE"
	KindUploadClosed       Kind = "UPLOAD_CLOSED"
	KindInvalidRole        Kind = "INVALID_ROLE"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindAccountData        Kind = "ACCOUNT_DATA_ERROR"
	KindNetwork            Kind = "NETWORK_ERROR"
	KindTimeout            Kind = "TIMEOUT"
	KindInternal           Kind = "INTERNAL_ERROR"
)

var knownKinds = map[Kind]int{
	KindValidation:         http.StatusBadRequest,
	KindBadRequest:         http.StatusBadRequest,
	KindNotFound:           http.StatusNotFound,
	KindInvalidMobile:      http.StatusBadRequest,
	KindInvalidCredentials: http.StatusUnauthorized,
	KindDuplicateEmail:     http.StatusBadRequest,
	KindDuplicateMobile:    http.StatusBadRequest,
	KindInsufficientFunds:  http.StatusBadRequest,
	KindPaymentMethod:      http.StatusBadRequest,
	KindUploadClosed:       http.StatusBadRequest,
	KindInvalidRole:        http.StatusBadRequest,
	KindUnauthorized:       http.StatusUnauthorized,
	KindAccountData:        http.StatusInternalServerError,
	KindNetwork:            0,
	KindTimeout:            http.StatusRequestTimeout,
	KindInternal:           http.StatusInternalServerError,
}

// Status returns the HTTP status code conventionally paired with the kind
func (k Kind) Status() int {
	if status, ok := knownKinds[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ParseKind maps a wire code back to a Kind; unknown codes yield ""
func ParseKind(code string) Kind {
	kind := Kind(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := knownKinds[kind]; ok {
		return kind
	}
	return ""
}

// Error is the error type produced by whichever layer first observes a failure
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind so errors.Is works against sentinels
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// New creates an error of the given kind with the kind's default status
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, StatusCode: kind.Status()}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap wraps err in an error of the given kind
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, StatusCode: kind.Status(), Err: err}
}

// WithStatus returns a copy of the error carrying a different status code
func (e *Error) WithStatus(status int) *Error {
	clone := *e
	clone.StatusCode = status
	return &clone
}

// NotFound creates the "<resource> not found" error
func NotFound(resource string) *Error {
	return New(KindNotFound, fmt.Sprintf("%s not found", resource))
}

// Validation creates a validation error from one or more messages
func Validation(messages ...string) *Error {
	return New(KindValidation, strings.Join(messages, ", "))
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return New(KindUnauthorized, message)
}

// Internal wraps an unexpected error
func Internal(err error) *Error {
	return Wrap(err, KindInternal, "Internal server error")
}

// As extracts an *Error from err
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal for foreign errors
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// StatusOf returns the status code of err, or 500 for foreign errors
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// From converts any error into an *Error, keeping existing kinds
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	return Internal(err)
}
