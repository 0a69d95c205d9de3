package rostercheck

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/okian/mergington/pkg/logger"
)

// outcome counts how a batch of roster changes went.
type outcome struct {
	ok     int64
	failed int64
}

// change is one roster call made by a worker: Signup or Unregister.
type change func(ctx context.Context, activity, email string) (int, string, error)

// runJobs fans jobs out to workers and counts 200 responses as successes.
func runJobs(ctx context.Context, cfg *Config, op string, jobs []job, do change) outcome {
	log := logger.Named("rostercheck")
	var res outcome

	jobChan := make(chan job, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				if ctx.Err() != nil {
					atomic.AddInt64(&res.failed, 1)
					continue
				}
				status, msg, err := do(ctx, j.activity, j.email)
				if err != nil || status != http.StatusOK {
					atomic.AddInt64(&res.failed, 1)
					log.Warn(ctx, "roster change failed",
						logger.String("operation", op),
						logger.String("activity", j.activity),
						logger.String("email", j.email),
						logger.Int("status", status),
						logger.String("detail", msg),
						logger.Error(err),
					)
					continue
				}
				atomic.AddInt64(&res.ok, 1)
				if cfg.Verbose {
					log.Info(ctx, msg, logger.String("operation", op))
				}
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobChan <- j:
			}
		}
	}()

	wg.Wait()
	return res
}
