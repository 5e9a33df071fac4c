package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a domain failure carrying one of the error kinds and a message safe to show callers
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrForbidden) works regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind sentinels for errors.Is
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

// Common domain errors
var (
	ErrInvalidCredentials   = Unauthorized("Invalid credentials")
	ErrCouldNotValidate     = Unauthorized("Could not validate credentials")
	ErrUserAlreadyExists    = Validation("User already exists")
	ErrEmailOrPhoneRequired = Validation("Email or phone required")
	ErrPasswordTooLong      = Validation("Password must be at most 72 bytes")
	ErrListingNotFound      = NotFound("Listing not found")
	ErrApplicationNotFound  = NotFound("Application not found")
	ErrUserNotFound         = NotFound("User not found")
	ErrAdminOnly            = Forbidden("Admin only")
	ErrNotAllowed           = Forbidden("Not allowed")
)

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf returns the kind of err, or KindInternal when err is not a domain error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
