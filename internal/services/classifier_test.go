package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/prinbox/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    ClassifyInput
		priority domain.Priority
		label    string
	}{
		{
			name:     "review query without reviewer info treats viewer as requested",
			input:    ClassifyInput{Author: "bob", QueryLabel: "Review Requested", Viewer: "alice"},
			priority: domain.PriorityHigh,
			label:    domain.StatusReview,
		},
		{
			name: "requested and assigned needs action",
			input: ClassifyInput{
				Author: "bob", Assignees: []string{"alice"}, QueryLabel: "Review Requested", Viewer: "alice",
				Reviewers: &domain.ReviewerInfo{Reviewers: []string{"alice"}},
			},
			priority: domain.PriorityHigh,
			label:    domain.StatusActionNeeded,
		},
		{
			name: "login comparison ignores case",
			input: ClassifyInput{
				Author: "bob", QueryLabel: "review-requested:@me", Viewer: "Alice",
				Reviewers: &domain.ReviewerInfo{Reviewers: []string{"alice"}},
			},
			priority: domain.PriorityHigh,
			label:    domain.StatusReview,
		},
		{
			name:     "assigned only",
			input:    ClassifyInput{Author: "bob", Assignees: []string{"ALICE"}, QueryLabel: "Assigned", Viewer: "alice"},
			priority: domain.PriorityHigh,
			label:    domain.StatusAssigned,
		},
		{
			name: "team request without individual request",
			input: ClassifyInput{
				Author: "bob", QueryLabel: "Review Requested", Viewer: "alice",
				Reviewers: &domain.ReviewerInfo{Teams: []string{"platform"}},
			},
			priority: domain.PriorityMedium,
			label:    domain.StatusTeamReview,
		},
		{
			name: "individual request outranks team request",
			input: ClassifyInput{
				Author: "bob", QueryLabel: "Review Requested", Viewer: "alice",
				Reviewers: &domain.ReviewerInfo{Reviewers: []string{"alice"}, Teams: []string{"platform"}},
			},
			priority: domain.PriorityHigh,
			label:    domain.StatusReview,
		},
		{
			name: "review already given leaves the row watching",
			input: ClassifyInput{
				Author: "bob", QueryLabel: "Review Requested", Viewer: "alice",
				Reviewers: &domain.ReviewerInfo{},
			},
			priority: domain.PriorityLow,
			label:    domain.StatusWatching,
		},
		{
			name: "reviewer info is ignored outside review queries",
			input: ClassifyInput{
				Author: "alice", QueryLabel: "My PRs", Viewer: "alice",
				Reviewers: &domain.ReviewerInfo{Teams: []string{"platform"}},
			},
			priority: domain.PriorityLow,
			label:    domain.StatusWaiting,
		},
		{
			name:     "author with changes requested label",
			input:    ClassifyInput{Author: "alice", Labels: []string{"Changes Requested"}, QueryLabel: "My PRs", Viewer: "alice"},
			priority: domain.PriorityMedium,
			label:    domain.StatusChangesNeeded,
		},
		{
			name:     "author with wip label",
			input:    ClassifyInput{Author: "alice", Labels: []string{"enhancement", "WIP"}, QueryLabel: "My PRs", Viewer: "alice"},
			priority: domain.PriorityMedium,
			label:    domain.StatusChangesNeeded,
		},
		{
			name:     "author in approved query",
			input:    ClassifyInput{Author: "alice", QueryLabel: "Approved PRs", Viewer: "alice"},
			priority: domain.PriorityLow,
			label:    domain.StatusApproved,
		},
		{
			name:     "author waiting",
			input:    ClassifyInput{Author: "alice", Labels: []string{"enhancement"}, QueryLabel: "My PRs", Viewer: "alice"},
			priority: domain.PriorityLow,
			label:    domain.StatusWaiting,
		},
		{
			name:     "unrelated pull request",
			input:    ClassifyInput{Author: "bob", QueryLabel: "Team PRs", Viewer: "alice"},
			priority: domain.PriorityLow,
			label:    domain.StatusWatching,
		},
		{
			name:     "unknown viewer is never author or assignee",
			input:    ClassifyInput{Author: "", Assignees: []string{""}, QueryLabel: "My PRs", Viewer: ""},
			priority: domain.PriorityLow,
			label:    domain.StatusWatching,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.priority, got.Priority)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestClassify_IsTotal(t *testing.T) {
	labels := []string{"Review Requested", "My PRs", "Approved", ""}
	viewers := []string{"alice", ""}
	reviewers := []*domain.ReviewerInfo{nil, {}, {Reviewers: []string{"alice"}}, {Teams: []string{"t"}}}

	for _, label := range labels {
		for _, viewer := range viewers {
			for _, rev := range reviewers {
				got := Classify(ClassifyInput{Author: "alice", Assignees: []string{"alice"}, QueryLabel: label, Viewer: viewer, Reviewers: rev})
				assert.Contains(t, []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}, got.Priority)
				assert.NotEmpty(t, got.Label)
			}
		}
	}
}

func TestEscalateFailingChecks(t *testing.T) {
	base := domain.Classification{Priority: domain.PriorityLow, Label: domain.StatusWaiting}

	tests := []struct {
		name     string
		record   domain.PullRequestRecord
		viewer   string
		expected domain.Classification
	}{
		{
			name:     "author with failing checks escalates",
			record:   domain.PullRequestRecord{Author: "alice", CheckStatus: domain.CheckStatusFailing},
			viewer:   "alice",
			expected: domain.Classification{Priority: domain.PriorityHigh, Label: domain.StatusChecksFailing},
		},
		{
			name:     "author with passing checks keeps classification",
			record:   domain.PullRequestRecord{Author: "alice", CheckStatus: domain.CheckStatusSuccess},
			viewer:   "alice",
			expected: base,
		},
		{
			name:     "non-author with failing checks keeps classification",
			record:   domain.PullRequestRecord{Author: "bob", CheckStatus: domain.CheckStatusFailing},
			viewer:   "alice",
			expected: base,
		},
		{
			name:     "unknown viewer never escalates",
			record:   domain.PullRequestRecord{Author: "", CheckStatus: domain.CheckStatusFailing},
			viewer:   "",
			expected: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscalateFailingChecks(base, tt.record, tt.viewer))
		})
	}
}
