// Package repository defines the activity registry store and its errors.
package repository

import (
	"context"

	"github.com/okian/mergington/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a snapshot of every activity keyed by name.
	List(ctx context.Context) (map[string]model.Activity, error)

	// Get returns a snapshot of one activity.
	// Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// AddParticipant appends email to the roster of the named activity and
	// returns the updated snapshot.
	// Returns ErrNotFound or ErrAlreadySignedUp.
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// RemoveParticipant removes email from the roster of the named activity and
	// returns the updated snapshot.
	// Returns ErrNotFound or ErrNotSignedUp.
	RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error)

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int
}
