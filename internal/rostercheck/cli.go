package rostercheck

import "os"

// ShowHelp prints usage information for the roster check tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Mergington Roster Check
=======================

Signs generated students up for activities on a running server, checks the
rosters, then unregisters them and checks every roster is back where it started.

Usage:
  go run ./cmd/roster-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -activity string
        Only exercise this activity (default: all)
  -students int
        Students signed up per activity (default 5)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Log every roster change
  -help
        Show this help message

Examples:
  go run ./cmd/roster-check -activity "Chess Club" -students 20
  go run ./cmd/roster-check -url http://localhost:8080 -workers 16
`)
}
