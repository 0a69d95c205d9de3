package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/mergington/internal/rostercheck"
	"github.com/okian/mergington/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers   = 2 // multiplier for runtime.NumCPU()
	defaultRunWindow = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", rostercheck.DefaultBaseURL, "Base URL of the service")
		activity = flag.String("activity", "", "Only exercise this activity (default: all)")
		students = flag.Int("students", rostercheck.DefaultStudents, "Students signed up per activity")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", rostercheck.DefaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Log every roster change")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		rostercheck.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunWindow)
	defer cancel()

	cfg := &rostercheck.Config{
		BaseURL:  *baseURL,
		Activity: *activity,
		Students: *students,
		Workers:  *workers,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if _, err := rostercheck.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "roster check failed", logger.Error(err))
		cancel()
		stop()
		os.Exit(1)
	}
}
