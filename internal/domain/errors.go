package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation so callers can branch behavior
// deterministically.
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindConflict      ErrorKind = "CONFLICT"
	KindForbidden     ErrorKind = "FORBIDDEN"
	KindInvalidState  ErrorKind = "INVALID_STATE"
	KindInconsistency ErrorKind = "INCONSISTENCY"
	KindInternal      ErrorKind = "INTERNAL"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func Forbiddenf(format string, args ...any) *Error {
	return newError(KindForbidden, format, args...)
}

func InvalidStatef(format string, args ...any) *Error {
	return newError(KindInvalidState, format, args...)
}

// Inconsistencyf marks a downstream mutation that failed after a prior step
// already committed. It indicates data drift requiring operator attention and
// must be logged at high severity by the caller.
func Inconsistencyf(format string, args ...any) *Error {
	return newError(KindInconsistency, format, args...)
}

func Internalf(err error, format string, args ...any) *Error {
	e := newError(KindInternal, format, args...)
	e.Err = err
	return e
}

// KindOf returns the classification of err, or KindInternal for untyped
// errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
