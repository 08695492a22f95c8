package user

import (
	"errors"
	"fmt"
)

// Closed set of domain errors. Handlers map each of these to exactly one
// HTTP status; anything outside the set is an internal error.
var (
	// ErrEmailTaken is returned when registration targets an email that
	// already has an account, whether detected by the pre-check or by the
	// store's uniqueness constraint.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" so that login failures do not leak which one happened.
	ErrInvalidCredentials = errors.New("incorrect data")

	// ErrAccountNotFound is returned by Store lookups that match nothing.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUniqueViolation is returned by Store.Insert when the email
	// uniqueness constraint rejects the row.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// ValidationError reports the first field that failed schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
