package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/okian/mergington/internal/domain/model"
)

// MemoryStore is a process-local Store. Activities are fixed at construction;
// only rosters change afterwards.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	order      []string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore builds a MemoryStore. Without options it holds DefaultSeed().
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{activities: make(map[string]*model.Activity)}
	if len(opts) == 0 {
		opts = []Option{WithActivities(DefaultSeed())}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// put registers a copy of a with a de-duplicated roster.
func (s *MemoryStore) put(a model.Activity) {
	if _, exists := s.activities[a.Name]; exists {
		return
	}
	c := a.Clone()
	c.Participants = c.Participants[:0]
	for _, email := range a.Participants {
		if !slices.Contains(c.Participants, email) {
			c.Participants = append(c.Participants, email)
		}
	}
	s.activities[a.Name] = &c
	s.order = append(s.order, a.Name)
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context) (map[string]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Names returns activity names in seed order.
func (s *MemoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// AddParticipant implements Store. Capacity is not checked.
func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	if a.HasParticipant(email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

// RemoveParticipant implements Store.
func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return model.Activity{}, ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return a.Clone(), nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
