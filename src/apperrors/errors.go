// Package apperrors defines the error kinds surfaced by catalog lookups.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindParse marks an unrecognised enumerated code.
	KindParse Kind = "parse"
	// KindData marks a missing or null required field in a payload.
	KindData Kind = "data"
	// KindValidation marks a constructor invariant violation.
	KindValidation Kind = "validation"
	// KindTransport marks a network, timeout or decode failure talking to the catalog.
	KindTransport Kind = "transport"
)

// Sentinels for errors.Is; matching is by kind only.
var (
	ErrParse      = &Error{Kind: KindParse}
	ErrData       = &Error{Kind: KindData}
	ErrValidation = &Error{Kind: KindValidation}
	ErrTransport  = &Error{Kind: KindTransport}
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func Parsef(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

func Dataf(format string, args ...any) *Error {
	return &Error{Kind: KindData, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Transport wraps cause as a transport failure.
func Transport(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}
