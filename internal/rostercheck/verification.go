package rostercheck

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sort"

	"github.com/okian/mergington/pkg/logger"
)

// selectTargets returns the activities to exercise in a stable order.
func selectTargets(activities map[string]Activity, only string) ([]string, error) {
	if only != "" {
		if _, ok := activities[only]; !ok {
			return nil, fmt.Errorf("%q: %w", only, ErrUnknownActivity)
		}
		return []string{only}, nil
	}
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// verifyPresent checks every job's student is on the roster they signed up for.
func verifyPresent(after map[string]Activity, jobs []job) error {
	for _, j := range jobs {
		a, ok := after[j.activity]
		if !ok {
			return fmt.Errorf("%q disappeared: %w", j.activity, ErrRosterMismatch)
		}
		if !slices.Contains(a.Participants, j.email) {
			return fmt.Errorf("%s missing from %q: %w", j.email, j.activity, ErrRosterMismatch)
		}
	}
	return nil
}

// verifyCounts checks every target roster has the size it had in before.
func verifyCounts(before, after map[string]Activity, targets []string) error {
	for _, name := range targets {
		want := len(before[name].Participants)
		got := len(after[name].Participants)
		if got != want {
			return fmt.Errorf("%q has %d participants, want %d: %w", name, got, want, ErrRosterMismatch)
		}
	}
	return nil
}

// verifyDuplicateRejected signs the first job's student up again and expects a 400.
func verifyDuplicateRejected(ctx context.Context, client *HTTPClient, j job) error {
	status, detail, err := client.Signup(ctx, j.activity, j.email)
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("duplicate signup for %q returned %d: %w", j.activity, status, ErrUnexpectedStatus)
	}
	logger.Named("rostercheck").Info(ctx, "duplicate signup rejected",
		logger.String("activity", j.activity),
		logger.String("detail", detail),
	)
	return nil
}
