package ui

import (
	"time"

	"github.com/renato0307/prinbox/internal/domain"
)

// refreshDoneMsg carries the result of a refresh the model started itself.
// Only results of timer-driven refreshes schedule the next tick, so one tick
// chain exists at any time.
type refreshDoneMsg struct {
	fromTimer bool
	ran       bool // False when the request was coalesced into a running cycle
	snapshot  *domain.Snapshot
}

// snapshotMsg delivers a snapshot published by the scheduler
type snapshotMsg struct {
	snapshot *domain.Snapshot
}

// tickMsg fires when the refresh interval elapses
type tickMsg time.Time

// openedMsg reports the outcome of opening a pull request
type openedMsg struct {
	err error
	url string
}
