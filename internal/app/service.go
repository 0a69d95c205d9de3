// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	repository "github.com/okian/mergington/internal/adapters/repository"
	"github.com/okian/mergington/internal/domain/model"
	"github.com/okian/mergington/pkg/logger"
	"github.com/okian/mergington/pkg/metrics"
)

// Operation names used in logs and rejection metrics.
const (
	opSignup     = "signup"
	opUnregister = "unregister"
)

// Service implements the API dependencies for the activity registry.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	metrics *metrics.Manager
	logger  logger.Logger

	started bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the registry backing the service.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager, metrics.Default() otherwise.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a new Service. Without WithStore it serves the default seed.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	return s
}

// Start publishes the initial roster gauges. Calling it again is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Named("registry")
	}

	activities, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	for name, a := range activities {
		s.metrics.UpdateParticipants(name, len(a.Participants))
	}
	s.metrics.UpdateActivities(len(activities))

	s.started = true
	s.logger.Info(ctx, "activity registry ready", logger.Int("activities", len(activities)))
	return nil
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Named("registry")
	}
	return s.logger
}

// Activities returns every activity keyed by name.
func (s *Service) Activities(ctx context.Context) (map[string]model.Activity, error) {
	activities, err := s.store.List(ctx)
	if err != nil {
		s.log().Error(ctx, "list activities failed", logger.Error(err))
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// Signup registers email for the named activity.
// Errors wrap repository.ErrNotFound or repository.ErrAlreadySignedUp.
func (s *Service) Signup(ctx context.Context, activity, email string) (model.Activity, error) {
	a, err := s.store.AddParticipant(ctx, activity, email)
	if err != nil {
		s.reject(ctx, opSignup, activity, email, err)
		return model.Activity{}, fmt.Errorf("%s %q: %w", opSignup, activity, err)
	}
	s.metrics.RecordSignup(activity, len(a.Participants))
	s.log().Info(ctx, "student signed up",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return a, nil
}

// Unregister removes email from the named activity.
// Errors wrap repository.ErrNotFound or repository.ErrNotSignedUp.
func (s *Service) Unregister(ctx context.Context, activity, email string) (model.Activity, error) {
	a, err := s.store.RemoveParticipant(ctx, activity, email)
	if err != nil {
		s.reject(ctx, opUnregister, activity, email, err)
		return model.Activity{}, fmt.Errorf("%s %q: %w", opUnregister, activity, err)
	}
	s.metrics.RecordUnregistration(activity, len(a.Participants))
	s.log().Info(ctx, "student unregistered",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return a, nil
}

func (s *Service) reject(ctx context.Context, op, activity, email string, err error) {
	reason := rejectionReason(err)
	s.metrics.RecordRejection(op, reason)
	s.log().Debug(ctx, "roster change rejected",
		logger.String("operation", op),
		logger.String("activity", activity),
		logger.String("email", email),
		logger.String("reason", reason),
	)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, repository.ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "internal"
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]any{
		"started":    started,
		"activities": s.store.Count(ctx),
	}

	activities, err := s.store.List(ctx)
	if err != nil {
		return stats
	}
	participants, openSpots := 0, 0
	for _, a := range activities {
		participants += len(a.Participants)
		openSpots += a.SpotsLeft()
	}
	stats["participants"] = participants
	stats["openSpots"] = openSpots
	return stats
}
