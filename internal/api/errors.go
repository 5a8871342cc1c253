package api

import (
	"errors"
	"fmt"
)

// Kind classifies backend failures so callers can branch on the class of
// error instead of matching message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindServer
	KindNotFound
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by every Backend operation.
type Error struct {
	Kind    Kind
	Message string // human-readable, shown inline in the UI
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error with the given kind and message.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// fallbackMessage is shown when a failure carries no usable message.
const fallbackMessage = "Something went wrong. Please try again."

// Message extracts the human-readable message from err, falling back to a
// generic string when err carries none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
