package domain

import "time"

// RefreshRun is the history entry written for every completed refresh cycle
type RefreshRun struct {
	Accounts    int
	CompletedAt time.Time
	ID          string
	Rows        int
	StartedAt   time.Time
	Trigger     Trigger
	Warnings    int
}

// Duration returns how long the cycle took
func (r RefreshRun) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
