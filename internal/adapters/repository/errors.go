package repository

import "errors"

// Sentinel kinds for registry errors. Their text is shown to API clients.
var (
	ErrNotFound        = errors.New("Activity not found")
	ErrAlreadySignedUp = errors.New("Student is already signed up for this activity")
	ErrNotSignedUp     = errors.New("Student is not signed up for this activity")
	ErrInvalidSeed     = errors.New("invalid activity seed")
)
