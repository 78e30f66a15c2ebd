package domain

import (
	"fmt"
	"sort"
	"time"
)

// Trigger records what started a refresh cycle
type Trigger string

const (
	TriggerStartup Trigger = "startup"
	TriggerTimer   Trigger = "timer"
	TriggerManual  Trigger = "manual"
	TriggerOneShot Trigger = "oneshot"
)

// ClassifiedRow is one rendered line of the inbox
type ClassifiedRow struct {
	Classification
	Age    string            // Display age, derived from Record.CreatedAt
	Key    string            // URL lookup key, "<account>_<platform id>"
	Kind   string            // Query label, with " (Draft)" for drafts
	Record PullRequestRecord // Underlying pull request
	Viewer string            // Login of the account viewer, empty when unknown
}

// RowKey builds the URL lookup key for a pull request found by an account
func RowKey(accountLabel string, id int64) string {
	return fmt.Sprintf("%s_%d", accountLabel, id)
}

// KindFor returns the row type shown in the Type column
func KindFor(queryLabel string, draft bool) string {
	if draft {
		return queryLabel + " (Draft)"
	}
	return queryLabel
}

// QueryGroup is a section of rows sharing a query label
type QueryGroup struct {
	Label string
	Rows  []ClassifiedRow
}

// Snapshot is the immutable result of one refresh cycle
type Snapshot struct {
	Accounts    int // Number of configured accounts
	CompletedAt time.Time
	Groups      []QueryGroup
	ID          string
	StartedAt   time.Time
	Total       int
	Trigger     Trigger
	Warnings    []Warning
}

// Flat returns every row in one list ordered by priority, then newest first
func (s *Snapshot) Flat() []ClassifiedRow {
	if s == nil {
		return nil
	}
	rows := make([]ClassifiedRow, 0, s.Total)
	for _, g := range s.Groups {
		rows = append(rows, g.Rows...)
	}
	SortRows(rows)
	return rows
}

// SortRows stable-sorts rows by priority ascending, then creation time descending.
// Rows with an unknown creation time sort after dated rows of the same priority.
func SortRows(rows []ClassifiedRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		ta, tb := a.Record.CreatedAt, b.Record.CreatedAt
		switch {
		case ta.IsZero() && tb.IsZero():
			return false
		case ta.IsZero():
			return false
		case tb.IsZero():
			return true
		}
		return ta.After(tb)
	})
}
