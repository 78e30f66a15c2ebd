package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/prinbox/internal/domain"
)

func TestNewSnapshotView(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	high := domain.ClassifiedRow{
		Classification: domain.Classification{Label: domain.StatusActionNeeded, Priority: domain.PriorityHigh},
		Kind:           "Review Requested",
		Record: domain.PullRequestRecord{
			AccountLabel: "Work", Author: "bob", CheckStatus: domain.CheckStatusSuccess,
			CreatedAt: now.Add(-2 * time.Hour), HTMLURL: "https://github.com/acme/api/pull/7", Number: 7,
			Repo: "acme/api", Title: "Add cache",
		},
	}
	low := domain.ClassifiedRow{
		Classification: domain.Classification{Label: domain.StatusWaiting, Priority: domain.PriorityMedium},
		Kind:           "My PRs (Draft)",
		Record:         domain.PullRequestRecord{AccountLabel: "Work", Draft: true, Number: 9},
	}
	snap := &domain.Snapshot{
		Groups: []domain.QueryGroup{
			{Label: "My PRs", Rows: []domain.ClassifiedRow{low}},
			{Label: "Review Requested", Rows: []domain.ClassifiedRow{high}},
			{Label: "Empty"},
		},
		ID:       "snap-1",
		Total:    2,
		Trigger:  domain.TriggerManual,
		Warnings: []domain.Warning{{Kind: domain.WarningCredentialMissing, Account: "Home", Message: "HOME_TOKEN is not set"}},
	}

	grouped := NewSnapshotView(snap, now, false)

	require.Len(t, grouped.Groups, 3)
	assert.Empty(t, grouped.Groups[2].Rows)
	assert.NotNil(t, grouped.Groups[2].Rows, "empty groups encode as []")
	assert.Equal(t, "manual", grouped.Trigger)
	assert.Equal(t, []WarningView{{Account: "Home", Kind: "credential_missing", Message: "HOME_TOKEN is not set"}}, grouped.Warnings)

	row := grouped.Groups[1].Rows[0]
	assert.Equal(t, "2h", row.Age)
	assert.Equal(t, "HIGH", row.Priority)
	assert.Equal(t, "success", row.Checks)
	assert.Equal(t, "https://github.com/acme/api/pull/7", row.URL)
	require.NotNil(t, row.CreatedAt)

	draft := grouped.Groups[0].Rows[0]
	assert.Equal(t, "?", draft.Age)
	assert.Nil(t, draft.CreatedAt)
	assert.True(t, draft.Draft)

	flat := NewSnapshotView(snap, now, true)
	require.Len(t, flat.Groups, 1)
	require.Len(t, flat.Groups[0].Rows, 2)
	assert.Equal(t, 7, flat.Groups[0].Rows[0].Number, "flat view sorts by priority")
}

func TestNewRunViews(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	views := NewRunViews([]domain.RefreshRun{{
		Accounts: 2, CompletedAt: start.Add(1500 * time.Millisecond), ID: "r1", Rows: 5,
		StartedAt: start, Trigger: domain.TriggerTimer, Warnings: 1,
	}})

	require.Len(t, views, 1)
	assert.Equal(t, int64(1500), views[0].DurationMS)
	assert.Equal(t, "timer", views[0].Trigger)
}
