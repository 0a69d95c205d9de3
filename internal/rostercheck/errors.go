package rostercheck

import "errors"

var (
	// ErrUnknownActivity is returned when -activity names nothing on the server.
	ErrUnknownActivity = errors.New("activity not found on server")
	// ErrRosterMismatch is returned when a roster differs from what the run expects.
	ErrRosterMismatch = errors.New("roster mismatch")
	// ErrUnexpectedStatus is returned for a response code the run did not expect.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
