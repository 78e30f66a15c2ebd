package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/prinbox/internal/domain"
)

func TestBuildQueries(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.FilterConfig
		expected []domain.Query
	}{
		{
			name:    "no queries falls back to review requested",
			filters: domain.FilterConfig{Scope: domain.ScopeAll},
			expected: []domain.Query{
				{Label: "Review Requested", Search: "is:pr is:open review-requested:@me"},
			},
		},
		{
			name: "specific scope appends repo tokens to every query",
			filters: domain.FilterConfig{
				Scope: domain.ScopeSpecific,
				Repos: []string{"a/b", "c/d"},
				Queries: []domain.NamedQuery{
					{Label: "Mine", Query: "is:pr is:open author:@me"},
					{Label: "Assigned", Query: "is:pr assignee:@me"},
				},
			},
			expected: []domain.Query{
				{Label: "Mine", Search: "is:pr is:open author:@me repo:a/b repo:c/d"},
				{Label: "Assigned", Search: "is:pr assignee:@me repo:a/b repo:c/d"},
			},
		},
		{
			name: "specific scope also narrows the default query",
			filters: domain.FilterConfig{
				Scope: domain.ScopeSpecific,
				Repos: []string{"a/b"},
			},
			expected: []domain.Query{
				{Label: "Review Requested", Search: "is:pr is:open review-requested:@me repo:a/b"},
			},
		},
		{
			name: "all scope ignores configured repos",
			filters: domain.FilterConfig{
				Scope:   domain.ScopeAll,
				Repos:   []string{"a/b"},
				Queries: []domain.NamedQuery{{Label: "Mine", Query: "is:pr author:@me"}},
			},
			expected: []domain.Query{
				{Label: "Mine", Search: "is:pr author:@me"},
			},
		},
		{
			name: "missing label and query use defaults",
			filters: domain.FilterConfig{
				Queries: []domain.NamedQuery{{}, {Label: "Custom"}, {Query: "is:pr label:bug"}},
			},
			expected: []domain.Query{
				{Label: "PRs", Search: "is:pr is:open"},
				{Label: "Custom", Search: "is:pr is:open"},
				{Label: "PRs", Search: "is:pr label:bug"},
			},
		},
		{
			name: "whitespace is normalized and blank repos skipped",
			filters: domain.FilterConfig{
				Scope:   domain.ScopeSpecific,
				Repos:   []string{" a/b ", ""},
				Queries: []domain.NamedQuery{{Label: "Mine", Query: "  is:pr   author:@me "}},
			},
			expected: []domain.Query{
				{Label: "Mine", Search: "is:pr author:@me repo:a/b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildQueries(tt.filters))
		})
	}
}
