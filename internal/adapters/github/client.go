package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v72/github"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
	"github.com/renato0307/prinbox/internal/version"
)

const requestTimeout = 10 * time.Second

// Client implements ports.GitHubClient on top of go-github
type Client struct {
	clients    map[ports.Credentials]*gh.Client
	httpClient *http.Client
	mu         sync.Mutex
}

// Verify interface compliance at compile time
var _ ports.GitHubClient = (*Client)(nil)

// NewClient creates a new Client. A nil httpClient uses one with a 10s timeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		clients:    make(map[ports.Credentials]*gh.Client),
		httpClient: httpClient,
	}
}

// tokenTransport authenticates requests with the "token" scheme
type tokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "token "+t.token)

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err == nil {
		logging.Logger.Debug("API request",
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"duration", time.Since(start).String())
	}
	return resp, err
}

// client returns the go-github client for creds, creating it on first use
func (c *Client) client(creds ports.Credentials) (*gh.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[creds]; ok {
		return client, nil
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := &http.Client{
		CheckRedirect: c.httpClient.CheckRedirect,
		Jar:           c.httpClient.Jar,
		Timeout:       c.httpClient.Timeout,
		Transport:     &tokenTransport{base: base, token: creds.Token},
	}

	client := gh.NewClient(httpClient)
	client.UserAgent = version.UserAgent()
	if creds.APIBase != "" {
		baseURL, err := url.Parse(strings.TrimRight(creds.APIBase, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base %q: %w", creds.APIBase, err)
		}
		client.BaseURL = baseURL
	}

	c.clients[creds] = client
	return client, nil
}

// CurrentUser returns the login of the token owner
func (c *Client) CurrentUser(ctx context.Context, creds ports.Credentials) (string, error) {
	client, err := c.client(creds)
	if err != nil {
		return "", err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", toAPIError(err))
	}
	return user.GetLogin(), nil
}

// searchIssue decodes created_at leniently: a malformed timestamp leaves CreatedAt zero
// instead of failing the whole page
type searchIssue struct {
	gh.Issue
	CreatedAt string `json:"created_at"`
}

type searchResult struct {
	Items []searchIssue `json:"items"`
}

// SearchIssues runs an issue search and returns the first page of results
func (c *Client) SearchIssues(ctx context.Context, creds ports.Credentials, query string, perPage int) ([]ports.SearchItem, error) {
	client, err := c.client(creds)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := client.NewRequest(http.MethodGet, "search/issues?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	var result searchResult
	if _, err := client.Do(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", toAPIError(err))
	}

	items := make([]ports.SearchItem, 0, len(result.Items))
	for _, it := range result.Items {
		items = append(items, toSearchItem(it))
	}

	logging.Logger.Debug("Search completed", "query", query, "results", len(items))
	return items, nil
}

// GetPullRequest reads the pull request resource at detailURL
func (c *Client) GetPullRequest(ctx context.Context, creds ports.Credentials, detailURL string) (*ports.PullRequestDetail, error) {
	client, err := c.client(creds)
	if err != nil {
		return nil, err
	}

	req, err := client.NewRequest(http.MethodGet, detailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pull request request: %w", err)
	}

	var pr gh.PullRequest
	if _, err := client.Do(ctx, req, &pr); err != nil {
		return nil, fmt.Errorf("failed to get pull request: %w", toAPIError(err))
	}

	detail := &ports.PullRequestDetail{HeadSHA: pr.GetHead().GetSHA()}
	for _, r := range pr.RequestedReviewers {
		if login := r.GetLogin(); login != "" {
			detail.RequestedReviewers = append(detail.RequestedReviewers, login)
		}
	}
	for _, team := range pr.RequestedTeams {
		if slug := team.GetSlug(); slug != "" {
			detail.RequestedTeams = append(detail.RequestedTeams, slug)
		}
	}
	return detail, nil
}

// ListCheckRuns lists the check runs of commit sha
func (c *Client) ListCheckRuns(ctx context.Context, creds ports.Credentials, repositoryURL, sha string) ([]ports.CheckRun, error) {
	client, err := c.client(creds)
	if err != nil {
		return nil, err
	}
	owner, repo, err := ownerAndRepo(repositoryURL)
	if err != nil {
		return nil, err
	}

	result, _, err := client.Checks.ListCheckRunsForRef(ctx, owner, repo, sha, &gh.ListCheckRunsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list check runs: %w", toAPIError(err))
	}

	runs := make([]ports.CheckRun, 0, len(result.CheckRuns))
	for _, r := range result.CheckRuns {
		runs = append(runs, ports.CheckRun{
			Conclusion: r.GetConclusion(),
			Name:       r.GetName(),
			Status:     r.GetStatus(),
		})
	}
	return runs, nil
}

// GetCombinedStatus returns the legacy combined commit status state of sha
func (c *Client) GetCombinedStatus(ctx context.Context, creds ports.Credentials, repositoryURL, sha string) (string, error) {
	client, err := c.client(creds)
	if err != nil {
		return "", err
	}
	owner, repo, err := ownerAndRepo(repositoryURL)
	if err != nil {
		return "", err
	}

	status, _, err := client.Repositories.GetCombinedStatus(ctx, owner, repo, sha, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get combined status: %w", toAPIError(err))
	}
	return status.GetState(), nil
}

// ownerAndRepo takes the last two path segments of a repository API URL
func ownerAndRepo(repositoryURL string) (string, string, error) {
	parsed, err := url.Parse(repositoryURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL %q: %w", repositoryURL, err)
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("invalid repository URL %q", repositoryURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// toAPIError converts go-github error responses into a domain.APIError, keeping the
// message and errors fields of the body. Other errors are returned as request failures.
func toAPIError(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		apiErr := &domain.APIError{Message: errResp.Message}
		if errResp.Response != nil {
			apiErr.StatusCode = errResp.Response.StatusCode
		}
		for _, e := range errResp.Errors {
			apiErr.Errors = append(apiErr.Errors, describeError(e))
		}
		return apiErr
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		apiErr := &domain.APIError{Message: rateErr.Message}
		if rateErr.Response != nil {
			apiErr.StatusCode = rateErr.Response.StatusCode
		}
		return apiErr
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		apiErr := &domain.APIError{Message: abuseErr.Message}
		if abuseErr.Response != nil {
			apiErr.StatusCode = abuseErr.Response.StatusCode
		}
		return apiErr
	}

	return fmt.Errorf("request failed: %w", err)
}

// describeError renders one entry of the errors field
func describeError(e gh.Error) string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Field != "":
		return fmt.Sprintf("%s.%s %s", e.Resource, e.Field, e.Code)
	default:
		return e.Code
	}
}

func toSearchItem(it searchIssue) ports.SearchItem {
	item := ports.SearchItem{
		Author:        it.GetUser().GetLogin(),
		Draft:         it.GetDraft(),
		HTMLURL:       it.GetHTMLURL(),
		ID:            it.GetID(),
		Number:        it.GetNumber(),
		RepositoryURL: it.GetRepositoryURL(),
		Title:         it.GetTitle(),
	}
	if it.PullRequestLinks != nil {
		item.PullRequestURL = it.PullRequestLinks.GetURL()
	}
	if created, err := time.Parse(time.RFC3339, it.CreatedAt); err == nil {
		item.CreatedAt = created
	}
	for _, a := range it.Assignees {
		if login := a.GetLogin(); login != "" {
			item.Assignees = append(item.Assignees, login)
		}
	}
	for _, l := range it.Labels {
		item.Labels = append(item.Labels, l.GetName())
	}
	return item
}
