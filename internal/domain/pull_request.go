package domain

import (
	"strings"
	"time"
)

// CheckStatus is the aggregated CI state of a pull request head commit
type CheckStatus string

const (
	CheckStatusUnknown CheckStatus = "unknown"
	CheckStatusPending CheckStatus = "pending"
	CheckStatusFailing CheckStatus = "failing"
	CheckStatusSuccess CheckStatus = "success"
)

// Symbol returns the glyph used to render the status
func (c CheckStatus) Symbol() string {
	switch c {
	case CheckStatusSuccess:
		return "✅"
	case CheckStatusPending:
		return "🟡"
	case CheckStatusFailing:
		return "❌"
	default:
		return "⚪"
	}
}

// ReviewerInfo lists the outstanding review requests on a pull request
type ReviewerInfo struct {
	Reviewers []string // Logins individually requested
	Teams     []string // Team slugs requested
}

// PullRequestRecord is one search hit, optionally enriched with CI and reviewer data
type PullRequestRecord struct {
	AccountLabel  string        // Display label of the account that found it
	Assignees     []string      // Assignee logins
	Author        string        // Author login
	CheckStatus   CheckStatus   // unknown until enrichment completes
	CreatedAt     time.Time     // Zero when the platform timestamp could not be parsed
	DetailURL     string        // API URL of the pull request, empty for plain issues
	Draft         bool          // Draft pull request
	HTMLURL       string        // Web URL opened in the browser
	ID            int64         // Platform identity, used for deduplication
	Labels        []string      // Label names
	Number        int           // Pull request number
	QueryLabel    string        // Label of the query that surfaced it
	Repo          string        // "owner/name"
	RepositoryURL string        // API URL of the repository
	Reviewers     *ReviewerInfo // nil until enrichment resolves it
	Title         string        // Pull request title
}

// RepoFromURL derives "owner/name" from the last two path segments of a repository URL
func RepoFromURL(repositoryURL string) string {
	parts := strings.Split(strings.TrimRight(repositoryURL, "/"), "/")
	if len(parts) < 2 {
		return repositoryURL
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
