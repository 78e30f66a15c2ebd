package ports

import (
	"context"
	"time"
)

// Credentials authenticate calls for one account
type Credentials struct {
	APIBase string // REST API base URL without trailing slash
	Token   string // Personal access token
}

// SearchItem is one issue search hit as returned by the platform
type SearchItem struct {
	Assignees      []string
	Author         string
	CreatedAt      time.Time // Zero when the timestamp could not be parsed
	Draft          bool
	HTMLURL        string
	ID             int64
	Labels         []string
	Number         int
	PullRequestURL string // Empty when the hit is not a pull request
	RepositoryURL  string
	Title          string
}

// PullRequestDetail is the subset of the pull request resource used for enrichment
type PullRequestDetail struct {
	HeadSHA            string
	RequestedReviewers []string // Logins
	RequestedTeams     []string // Team slugs
}

// CheckRun is one CI check run for a commit
type CheckRun struct {
	Conclusion string // Empty while the run has not concluded
	Name       string
	Status     string // queued, in_progress, completed
}

// IdentityReader resolves the login behind a token
type IdentityReader interface {
	CurrentUser(ctx context.Context, creds Credentials) (string, error)
}

// PullRequestSearcher runs issue searches
type PullRequestSearcher interface {
	SearchIssues(ctx context.Context, creds Credentials, query string, perPage int) ([]SearchItem, error)
}

// CheckStatusReader reads the data needed to resolve CI status and review requests
type CheckStatusReader interface {
	GetCombinedStatus(ctx context.Context, creds Credentials, repositoryURL, sha string) (string, error)
	GetPullRequest(ctx context.Context, creds Credentials, detailURL string) (*PullRequestDetail, error)
	ListCheckRuns(ctx context.Context, creds Credentials, repositoryURL, sha string) ([]CheckRun, error)
}

// GitHubClient is the full read-only API surface used by the inbox
type GitHubClient interface {
	CheckStatusReader
	IdentityReader
	PullRequestSearcher
}
