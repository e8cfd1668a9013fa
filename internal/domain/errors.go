package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories the API can return.
// Handlers map each kind to exactly one HTTP status; nothing else is allowed.
type Kind int

const (
	KindInvalidData Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInfra
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid_data"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindInfra:
		return "infra"
	}
	return "unknown"
}

// Error is a domain failure with a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
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

// ==========================
// Constructors
// ==========================

func InvalidData(message string) *Error {
	return &Error{Kind: KindInvalidData, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Infra wraps an unexpected storage or crypto failure. The cause is kept for
// logging at the boundary but is never rendered to clients.
func Infra(message string, err error) *Error {
	return &Error{Kind: KindInfra, Message: message, Err: err}
}

// KindOf extracts the domain kind from err. ok is false for non-domain errors,
// which callers should treat as infra failures.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return KindInfra, false
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
