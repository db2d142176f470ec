package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the request boundary. Handlers map kinds to
// HTTP status codes; services never touch status codes directly.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuthentication
	KindAuthorization
	KindDelivery
)

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

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, fmt.Sprintf(format, args...))
}

func Authentication(format string, args ...any) *Error {
	return newError(KindAuthentication, fmt.Sprintf(format, args...))
}

func Authorization(format string, args ...any) *Error {
	return newError(KindAuthorization, fmt.Sprintf(format, args...))
}

func Delivery(message string, err error) *Error {
	return &Error{Kind: KindDelivery, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether any error in the chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
