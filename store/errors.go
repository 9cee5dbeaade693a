package store

import "errors"

// Sentinel errors surfaced by store operations. Controllers map these
// to HTTP statuses; the message text is what the client sees.
var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the unique email index rejects
	// an insert.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
