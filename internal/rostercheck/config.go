package rostercheck

import "time"

// Config holds configuration for a roster check run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Activity string        // Activity to exercise, all when empty
	Students int           // Students signed up per activity
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log every roster change
}

// Activity mirrors one entry of the GET /activities response.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Stats holds run statistics.
type Stats struct {
	Activities     int
	Signups        int
	SignupsFailed  int
	DuplicatesSeen int
	Unregistered   int
	UnregFailed    int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// job is one roster change handed to a worker.
type job struct {
	activity string
	email    string
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Students <= 0 {
		c.Students = DefaultStudents
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}
