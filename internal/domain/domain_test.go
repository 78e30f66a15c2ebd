package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		expected  string
	}{
		{"unknown", time.Time{}, "?"},
		{"seconds ago", now.Add(-30 * time.Second), "now"},
		{"future timestamp", now.Add(time.Minute), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m"},
		{"hours", now.Add(-3*time.Hour - 10*time.Minute), "3h"},
		{"days", now.Add(-50 * time.Hour), "2d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAge(tt.createdAt, now))
		})
	}
}

func TestSortRows_PriorityThenNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	row := func(title string, p Priority, created time.Time) ClassifiedRow {
		return ClassifiedRow{
			Classification: Classification{Priority: p},
			Record:         PullRequestRecord{Title: title, CreatedAt: created},
		}
	}

	rows := []ClassifiedRow{
		row("low-old", PriorityLow, base.Add(-48*time.Hour)),
		row("high-undated", PriorityHigh, time.Time{}),
		row("high-old", PriorityHigh, base.Add(-10*24*time.Hour)),
		row("medium", PriorityMedium, base),
		row("high-new", PriorityHigh, base.Add(-time.Hour)),
		row("low-new", PriorityLow, base),
	}

	SortRows(rows)

	var titles []string
	for _, r := range rows {
		titles = append(titles, r.Record.Title)
	}
	// 10 days old must sort after 1 hour old; the string "10d" < "1h" would not
	assert.Equal(t, []string{"high-new", "high-old", "high-undated", "medium", "low-new", "low-old"}, titles)
}

func TestSnapshotFlat(t *testing.T) {
	base := time.Now()
	snap := &Snapshot{
		Groups: []QueryGroup{
			{Label: "Mine", Rows: []ClassifiedRow{
				{Classification: Classification{Priority: PriorityLow}, Record: PullRequestRecord{ID: 1, CreatedAt: base}},
			}},
			{Label: "Empty"},
			{Label: "Review", Rows: []ClassifiedRow{
				{Classification: Classification{Priority: PriorityHigh}, Record: PullRequestRecord{ID: 2, CreatedAt: base}},
			}},
		},
		Total: 2,
	}

	flat := snap.Flat()

	assert.Len(t, flat, 2)
	assert.Equal(t, int64(2), flat[0].Record.ID)
	assert.Equal(t, int64(1), flat[1].Record.ID)

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Flat())
}

func TestRepoFromURL(t *testing.T) {
	assert.Equal(t, "acme/api", RepoFromURL("https://api.github.com/repos/acme/api"))
	assert.Equal(t, "acme/api", RepoFromURL("https://ghe.example.com/api/v3/repos/acme/api/"))
	assert.Equal(t, "plain", RepoFromURL("plain"))
}

func TestAccountDisplayLabel(t *testing.T) {
	assert.Equal(t, "Work", Account{ID: "work", Label: "Work"}.DisplayLabel())
	assert.Equal(t, "work", Account{ID: "work"}.DisplayLabel())
	assert.Equal(t, "Unknown", Account{}.DisplayLabel())
}

func TestAccountBaseURL(t *testing.T) {
	assert.Equal(t, DefaultAPIBase, Account{}.BaseURL())
	assert.Equal(t, "https://ghe.example.com/api/v3", Account{APIBase: "https://ghe.example.com/api/v3/"}.BaseURL())
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, "My PRs", KindFor("My PRs", false))
	assert.Equal(t, "My PRs (Draft)", KindFor("My PRs", true))
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{"status only", &APIError{StatusCode: 500}, "API error 500"},
		{"with message", &APIError{StatusCode: 401, Message: "Bad credentials"}, "API error 401: Bad credentials"},
		{
			"with errors",
			&APIError{StatusCode: 422, Message: "Validation Failed", Errors: []string{"invalid qualifier", "bad repo"}},
			"API error 422: Validation Failed (invalid qualifier; bad repo)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClassificationIcon(t *testing.T) {
	assert.Equal(t, "🔴", Classification{Priority: PriorityHigh, Label: StatusReview}.Icon())
	assert.Equal(t, "🟡", Classification{Priority: PriorityMedium, Label: StatusTeamReview}.Icon())
	assert.Equal(t, "🟢", Classification{Priority: PriorityLow, Label: StatusWaiting}.Icon())
	assert.Equal(t, "⚪", Classification{Priority: PriorityLow, Label: StatusWatching}.Icon())
}
