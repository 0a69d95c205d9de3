package repository

import "github.com/okian/mergington/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithActivities seeds the store. Later entries with a repeated name are ignored.
func WithActivities(activities []model.Activity) Option {
	return func(s *MemoryStore) {
		for _, a := range activities {
			s.put(a)
		}
	}
}
