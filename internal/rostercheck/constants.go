package rostercheck

import "time"

// Defaults applied by Normalize.
const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultStudents = 5
	DefaultTimeout  = 10 * time.Second
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// EmailDomain is the school domain used for generated students.
const EmailDomain = "mergington.edu"
