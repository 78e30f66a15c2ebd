package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/services"
)

var listNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func listRow(id int64, label string, priority domain.Priority, query, title string) domain.ClassifiedRow {
	return domain.ClassifiedRow{
		Classification: domain.Classification{Label: label, Priority: priority},
		Key:            domain.RowKey("Work", id),
		Kind:           query,
		Record: domain.PullRequestRecord{
			AccountLabel: "Work",
			Author:       "bob",
			CreatedAt:    listNow.Add(-time.Duration(id) * time.Hour),
			ID:           id,
			QueryLabel:   query,
			Repo:         "acme/api",
			Title:        title,
		},
	}
}

func listSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		CompletedAt: listNow,
		Groups: []domain.QueryGroup{
			{Label: "Review Requested", Rows: []domain.ClassifiedRow{
				listRow(1, domain.StatusReview, domain.PriorityHigh, "Review Requested", "Add retries"),
			}},
			{Label: "Assigned", Rows: nil},
			{Label: "My PRs", Rows: []domain.ClassifiedRow{
				listRow(2, domain.StatusWaiting, domain.PriorityMedium, "My PRs", "Bump deps"),
			}},
		},
		ID:    "snap-1",
		Total: 2,
	}
}

func TestListCmd_RenderGroupedTable(t *testing.T) {
	var buf bytes.Buffer
	l := &ListCmd{Format: "table"}

	require.NoError(t, l.render(&buf, listSnapshot(), listNow))

	out := buf.String()
	assert.Contains(t, out, "📌 Review Requested (1)")
	assert.Contains(t, out, "📌 My PRs (1)")
	assert.NotContains(t, out, "Assigned (0)", "empty sections are hidden")
	assert.Contains(t, out, "Add retries")
	assert.Contains(t, out, "Bump deps")
	assert.Contains(t, out, "Status")
	assert.Less(t, strings.Index(out, "Review Requested"), strings.Index(out, "My PRs"))
}

func TestListCmd_RenderFlatTable(t *testing.T) {
	var buf bytes.Buffer
	l := &ListCmd{Flat: true, Format: "table"}

	require.NoError(t, l.render(&buf, listSnapshot(), listNow))

	out := buf.String()
	assert.NotContains(t, out, "📌")
	assert.Less(t, strings.Index(out, "Add retries"), strings.Index(out, "Bump deps"),
		"high priority row comes first")
}

func TestListCmd_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	l := &ListCmd{Format: "table"}

	require.NoError(t, l.render(&buf, &domain.Snapshot{ID: "empty"}, listNow))

	assert.Equal(t, "No pull requests need your attention.\n", buf.String())
}

func TestListCmd_RenderJSON(t *testing.T) {
	tests := []struct {
		name       string
		flat       bool
		wantGroups []string
	}{
		{name: "grouped keeps query order", flat: false, wantGroups: []string{"Review Requested", "Assigned", "My PRs"}},
		{name: "flat uses one group", flat: true, wantGroups: []string{"All"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := &ListCmd{Flat: tt.flat, Format: "json"}

			require.NoError(t, l.render(&buf, listSnapshot(), listNow))

			var view services.SnapshotView
			require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
			assert.Equal(t, "snap-1", view.ID)
			assert.Equal(t, 2, view.Total)

			labels := make([]string, 0, len(view.Groups))
			for _, g := range view.Groups {
				labels = append(labels, g.Label)
			}
			assert.Equal(t, tt.wantGroups, labels)
		})
	}
}
