package rostercheck

import (
	"github.com/google/uuid"
)

// generateEmails returns n unique student addresses for the school domain.
func generateEmails(n int) []string {
	emails := make([]string, 0, n)
	for range n {
		emails = append(emails, "student-"+uuid.NewString()+"@"+EmailDomain)
	}
	return emails
}

// buildJobs pairs every target activity with every generated student.
func buildJobs(targets []string, students int) []job {
	jobs := make([]job, 0, len(targets)*students)
	for _, name := range targets {
		for _, email := range generateEmails(students) {
			jobs = append(jobs, job{activity: name, email: email})
		}
	}
	return jobs
}
