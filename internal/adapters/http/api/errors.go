package api

import (
	"errors"
	"net/http"

	repository "github.com/okian/mergington/internal/adapters/repository"
)

// Sentinel kinds for API errors.
var (
	ErrMissingEmail = errors.New("email query parameter is required")
)

// statusFor maps an error to its HTTP status and client-facing detail.
// Registry errors keep their own text; anything unknown becomes a 500.
func statusFor(err error) (int, string) {
	for _, known := range []struct {
		err    error
		status int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{repository.ErrAlreadySignedUp, http.StatusBadRequest},
		{repository.ErrNotSignedUp, http.StatusBadRequest},
		{ErrMissingEmail, http.StatusUnprocessableEntity},
	} {
		if errors.Is(err, known.err) {
			return known.status, known.err.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
