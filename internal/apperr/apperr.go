// Package apperr classifies failures at the HTTP edge. Each Kind maps to
// exactly one status code; the wrapped cause is for logs only.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the category of an application error.
type Kind int

// Error kinds.
const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

// String returns the kind name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// statusByKind is the single mapping from kind to HTTP status.
var statusByKind = map[Kind]int{
	KindInternal:   http.StatusInternalServerError,
	KindValidation: http.StatusBadRequest,
	KindNotFound:   http.StatusNotFound,
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if status, ok := statusByKind[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is an error with a kind and a caller-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the caller-safe message, followed by the cause if any.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error.
func Validation(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

// NotFound returns a KindNotFound error.
func NotFound(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

// Internal returns a KindInternal error.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
