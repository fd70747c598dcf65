package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure; the HTTP layer maps kinds to status codes.
type Kind int

const (
	Internal Kind = iota
	NotFound
	InvalidInput
	Unauthenticated
	Forbidden
	Conflict
	InvalidOperation
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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInputf(format string, args ...any) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticatedf(format string, args ...any) *Error {
	return &Error{Kind: Unauthenticated, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) *Error {
	return &Error{Kind: Forbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperationf(format string, args ...any) *Error {
	return &Error{Kind: InvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying failure.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or Internal when err carries no taxonomy.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return Internal
}

// MessageOf returns the client-facing message of err. Untyped errors get a
// generic message so internals never leak to clients.
func MessageOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return "internal server error"
}
