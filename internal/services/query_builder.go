package services

import (
	"strings"

	"github.com/renato0307/prinbox/internal/domain"
)

const (
	defaultQueryLabel  = "PRs"
	defaultQuerySearch = "is:pr is:open"

	reviewRequestedLabel  = "Review Requested"
	reviewRequestedSearch = "is:pr is:open review-requested:@me"
)

// BuildQueries turns an account's filter configuration into the ordered list of searches to run.
// Accounts without queries get the review-requested search. With specific scope every query is
// narrowed to the configured repositories.
func BuildQueries(filters domain.FilterConfig) []domain.Query {
	configured := filters.Queries
	if len(configured) == 0 {
		configured = []domain.NamedQuery{{Label: reviewRequestedLabel, Query: reviewRequestedSearch}}
	}

	var repoTokens []string
	if filters.Scope == domain.ScopeSpecific {
		for _, repo := range filters.Repos {
			repo = strings.TrimSpace(repo)
			if repo == "" {
				continue
			}
			repoTokens = append(repoTokens, "repo:"+repo)
		}
	}

	queries := make([]domain.Query, 0, len(configured))
	for _, q := range configured {
		label := strings.TrimSpace(q.Label)
		if label == "" {
			label = defaultQueryLabel
		}

		tokens := strings.Fields(q.Query)
		if len(tokens) == 0 {
			tokens = strings.Fields(defaultQuerySearch)
		}
		tokens = append(tokens, repoTokens...)

		queries = append(queries, domain.Query{
			Label:  label,
			Search: strings.Join(tokens, " "),
		})
	}

	return queries
}
