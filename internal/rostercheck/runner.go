package rostercheck

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/mergington/pkg/logger"
)

// Run signs generated students up for the target activities, checks the
// rosters, then unregisters them and checks every roster is back to its
// starting size.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	cfg.Normalize()
	log := logger.Named("rostercheck")
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting roster check",
		logger.String("baseURL", cfg.BaseURL),
		logger.String("activity", cfg.Activity),
		logger.Int("students", cfg.Students),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
	)

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	// Step 1: service health
	if err := client.Healthy(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: starting rosters
	before, err := client.Activities(ctx)
	if err != nil {
		return stats, err
	}
	targets, err := selectTargets(before, cfg.Activity)
	if err != nil {
		return stats, err
	}
	stats.Activities = len(targets)

	// Step 3: concurrent signups
	jobs := buildJobs(targets, cfg.Students)
	signed := runJobs(ctx, cfg, "signup", jobs, client.Signup)
	stats.Signups = int(signed.ok)
	stats.SignupsFailed = int(signed.failed)
	if signed.failed > 0 {
		return finish(stats), fmt.Errorf("%d signups failed: %w", signed.failed, ErrUnexpectedStatus)
	}

	// Step 4: every student listed
	during, err := client.Activities(ctx)
	if err != nil {
		return finish(stats), err
	}
	if err := verifyPresent(during, jobs); err != nil {
		return finish(stats), err
	}

	// Step 5: a second signup is refused
	if len(jobs) > 0 {
		if err := verifyDuplicateRejected(ctx, client, jobs[0]); err != nil {
			return finish(stats), err
		}
		stats.DuplicatesSeen++
	}

	// Step 6: concurrent unregistrations
	removed := runJobs(ctx, cfg, "unregister", jobs, client.Unregister)
	stats.Unregistered = int(removed.ok)
	stats.UnregFailed = int(removed.failed)
	if removed.failed > 0 {
		return finish(stats), fmt.Errorf("%d unregistrations failed: %w", removed.failed, ErrUnexpectedStatus)
	}

	// Step 7: rosters restored
	after, err := client.Activities(ctx)
	if err != nil {
		return finish(stats), err
	}
	if err := verifyCounts(before, after, targets); err != nil {
		return finish(stats), err
	}

	finish(stats)
	displayFinalStats(ctx, stats)
	log.Info(ctx, "roster check passed")
	return stats, nil
}

func finish(stats *Stats) *Stats {
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	return stats
}

// displayFinalStats logs the run summary.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.Signups+stats.Unregistered) / stats.Duration.Seconds()
	}

	logger.Named("rostercheck").Info(ctx, "final statistics",
		logger.Int("activities", stats.Activities),
		logger.Int("signups", stats.Signups),
		logger.Int("signupsFailed", stats.SignupsFailed),
		logger.Int("duplicatesRejected", stats.DuplicatesSeen),
		logger.Int("unregistered", stats.Unregistered),
		logger.Int("unregisterFailed", stats.UnregFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Any("changesPerSecond", perSecond),
	)
}
