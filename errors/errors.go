package errors

import (
	goerrors "errors"
	"fmt"
)

var (
	ErrValidation           = fmt.Errorf("validation error")
	ErrUnauthenticated      = fmt.Errorf("unauthenticated")
	ErrForbidden            = fmt.Errorf("forbidden")
	ErrNotFound             = fmt.Errorf("not found")
	ErrPersonaNotFound      = fmt.Errorf("persona not found")
	ErrStoreUnavailable     = fmt.Errorf("store unavailable")
	ErrPersonaAlreadyExists = fmt.Errorf("persona already exists")
)

// Reason classifies a schema violation.
type Reason string

const (
	InvalidDate          Reason = "InvalidDate"
	InvalidParticipant   Reason = "InvalidParticipant"
	MissingRequiredField Reason = "MissingRequiredField"
	InvalidType          Reason = "InvalidType"
	InvalidFormat        Reason = "InvalidFormat"
)

// ValidationError reports the first offending field of a candidate document.
type ValidationError struct {
	Field   string
	Reason  Reason
	Message string
}

func NewValidationError(field string, reason Reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// EmailAccessError is returned by show and delete when the email is either absent
// or not addressed to the caller. Both cases print the same text so that a caller
// cannot probe for the existence of emails it may not read.
type EmailAccessError struct {
	ID    string
	cause error
}

func NewEmailNotFound(id string) error {
	return &EmailAccessError{ID: id, cause: ErrNotFound}
}

func NewEmailForbidden(id string) error {
	return &EmailAccessError{ID: id, cause: ErrForbidden}
}

func (e *EmailAccessError) Error() string {
	return fmt.Sprintf("email with id = %s doesn't exist", e.ID)
}

func (e *EmailAccessError) Unwrap() error {
	return e.cause
}

// IsRetryable reports whether the caller may retry the failed operation.
func IsRetryable(err error) bool {
	return goerrors.Is(err, ErrStoreUnavailable)
}

// Unavailable wraps an infrastructure failure of the store.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// Is and As forward to the standard library so callers need a single errors import.
func Is(err, target error) bool { return goerrors.Is(err, target) }

func As(err error, target any) bool { return goerrors.As(err, target) }
