// Package model contains domain models passed between layers.
package model

import "slices"

// Activity is an extracurricular offering with its participant roster.
// Participants keep signup order and hold each email at most once.
type Activity struct {
	Name            string   `json:"-" koanf:"name"`
	Description     string   `json:"description" koanf:"description"`
	Schedule        string   `json:"schedule" koanf:"schedule"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants"`
	Participants    []string `json:"participants" koanf:"participants"`
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a copy that shares no roster storage with a.
// The roster is never nil so it encodes as [] rather than null.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}

// SpotsLeft is MaxParticipants minus the roster size, floored at zero.
// Capacity is informational; signups are not refused when it reaches zero.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}
