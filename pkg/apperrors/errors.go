// Package apperrors defines the closed error taxonomy used across the
// service. Every failure surfaced to an operator is one of these kinds;
// anything that cannot be classified reduces to KindUnknown with a constant
// message.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation covers bad input and broken preconditions, e.g. a cart
	// line with no matching stock record.
	KindValidation
	// KindConflict covers state races such as insufficient stock at commit.
	KindConflict
	// KindTransport covers database, cache and broker failures.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// UnknownMessage is shown when an error carries no recognizable shape.
const UnknownMessage = "an unknown error occurred"

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Transport(err error, msg string) *Error {
	return &Error{Kind: KindTransport, Msg: msg, Err: errors.WithStack(err)}
}

// KindOf classifies any error. Wrapped *Error values are unwrapped first.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message extracts the operator-facing message. Unclassified errors map to
// UnknownMessage so raw driver internals never reach a terminal screen.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return UnknownMessage
}
