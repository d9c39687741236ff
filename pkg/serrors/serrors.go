// Package serrors provides semantic error kinds shared by the domain,
// storage and catalog layers. Every error carries a kind sentinel and may
// carry the name of the field that failed validation.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel).
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrInvalidValue indicates a value outside its allowed range or format,
	// e.g. a magazine name longer than 16 characters.
	ErrInvalidValue = NewKind("INVALID_VALUE")
	// ErrInvalidReference indicates a missing entity reference, e.g. an
	// article without an author.
	ErrInvalidReference = NewKind("INVALID_REFERENCE")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict indicates the entity is already registered or a name is
	// declared twice.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates a failure that is not the caller's fault.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional field name, an
// optional wrapped cause and an optional message.
//
// Error string formatting:
//   - field, msg and err set: "<field>: <msg>: <err>"
//   - field omitted: "<msg>: <err>"
//   - nothing but the kind: the kind's Error() string.
type Error struct {
	kind  Kind
	field string
	err   error
	msg   string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Invalid constructs a semantic error attributed to a single field.
func Invalid(k Kind, field, msgFmt string, args ...any) *Error {
	return &Error{kind: k, field: field, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var s string
	switch {
	case e.msg != "" && e.err != nil:
		s = e.msg + ": " + e.err.Error()
	case e.msg != "":
		s = e.msg
	case e.err != nil:
		s = e.err.Error()
	case e.kind != nil:
		s = e.kind.Error()
	default:
		s = "unknown error"
	}

	if e.field != "" {
		return e.field + ": " + s
	}

	return s
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped
// error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Field returns the name of the field the error is attributed to.
func (e *Error) Field() string { return e.field }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// Field returns the field name of the first *Error in err's chain that has
// one, or an empty string.
func Field(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.field != "" {
			return e.field
		}
		err = e.err
	}

	return ""
}
