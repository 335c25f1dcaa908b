// Package serrors provides semantic error kinds for classifying failures
// across package boundaries. A Kind is a comparable sentinel; the Error
// wrapper attaches a kind and an optional cause/message while remaining
// fully compatible with errors.Is/As/Unwrap.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It distinguishes semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a comparable sentinel) with the
// provided name.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds covering the failure categories the ST client and the
// matching tooling care about.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing or invalid API key.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates invalid input data (malformed export, bad parameters).
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrRateLimited indicates the remote API rejected the request for quota reasons.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrUnavailable indicates the remote service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Matching semantics: errors.Is/As match against either the kind sentinel or
// the wrapped cause chain.
//
// Error string formatting:
//   - msg and cause set: "<msg>: <cause>"
//   - only msg set: "<msg>"
//   - only cause set: "<cause>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a formatted
// message. Use Wrap to also attach a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and adding a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause chain.
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

// As matches type assertions against either the kind sentinel or the wrapped
// cause chain.
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
