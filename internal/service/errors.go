package service

import (
	"errors"

	"github.com/MKhiriev/go-contact-book/internal/store"
)

var (
	// ErrValidation wraps a *validators.ValidationError describing which
	// submitted fields were rejected.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence wraps any store failure other than a missing record.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotFound is returned (wrapped) when the requested record id does not
	// exist.
	ErrNotFound = store.ErrNotFound

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAuth is the parent of every authentication failure:
	// errors.Is(ErrBadCredentials, ErrAuth) holds.
	ErrAuth = errors.New("authentication failed")

	ErrUserNotFound    = newAuthError("User does not exist")
	ErrBadCredentials  = newAuthError("Wrong password")
	ErrUnauthenticated = newAuthError("Please log in to access this page.")
)

// AuthError is an authentication failure whose message is safe to show to
// the user.
type AuthError struct {
	message string
}

func newAuthError(message string) *AuthError {
	return &AuthError{message: message}
}

func (e *AuthError) Error() string {
	return e.message
}

// Is makes every AuthError match ErrAuth.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}
