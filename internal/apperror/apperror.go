// Package apperror defines the error taxonomy surfaced to API clients.
// Only the Message field ever reaches a client; wrapped errors stay
// server-side for logs.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	// KindValidation covers malformed or missing input.
	KindValidation
	// KindConflict covers duplicate-email signups.
	KindConflict
	// KindInvalidCredentials covers failed logins. The message is generic
	// for unknown email and wrong password alike.
	KindInvalidCredentials
	// KindUnauthorized covers missing, malformed or expired bearer tokens.
	KindUnauthorized
	// KindNotFound covers unknown routes and missing records.
	KindNotFound
	// KindUnavailable covers store timeouts and connection failures.
	KindUnavailable
)

// Error is an application error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewValidation(message string) *Error {
	return New(KindValidation, message, nil)
}

func NewConflict(message string) *Error {
	return New(KindConflict, message, nil)
}

func NewInvalidCredentials() *Error {
	return New(KindInvalidCredentials, "Invalid credentials", nil)
}

func NewUnauthorized(message string, err error) *Error {
	return New(KindUnauthorized, message, err)
}

func NewNotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func NewUnavailable(err error) *Error {
	return New(KindUnavailable, "Service unavailable", err)
}

func NewInternal(err error) *Error {
	return New(KindInternal, "Internal server error", err)
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
