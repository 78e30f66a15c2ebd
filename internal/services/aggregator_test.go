package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/ports"
	portsmocks "github.com/renato0307/prinbox/internal/ports/mocks"
)

var aggregatorNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type aggregatorFixture struct {
	client *portsmocks.MockGitHubClient
	creds  *portsmocks.MockCredentialSource
	urls   *URLTable
}

func newAggregatorFixture(t *testing.T) *aggregatorFixture {
	return &aggregatorFixture{
		client: portsmocks.NewMockGitHubClient(t),
		creds:  portsmocks.NewMockCredentialSource(t),
		urls:   NewURLTable(),
	}
}

func (f *aggregatorFixture) aggregator(accounts ...domain.Account) *Aggregator {
	fetcher := NewAccountFetcher(f.client, f.creds, NewIdentityCache(f.client))
	agg := NewAggregator(accounts, fetcher, NewCheckStatusResolver(f.client), f.urls, 2)
	agg.now = func() time.Time { return aggregatorNow }
	return agg
}

// account registers an account whose token resolves to "tok-<id>" and whose viewer is login
func (f *aggregatorFixture) account(id, login string, queries ...domain.NamedQuery) domain.Account {
	envVar := "TOKEN_" + id
	f.creds.EXPECT().Lookup(envVar).Return("tok-"+id, true).Maybe()
	f.client.EXPECT().CurrentUser(mock.Anything, ports.Credentials{APIBase: domain.DefaultAPIBase, Token: "tok-" + id}).
		Return(login, nil).Maybe()
	return domain.Account{ID: id, Label: id, TokenEnvVar: envVar, Filters: domain.FilterConfig{Queries: queries}}
}

func (f *aggregatorFixture) search(query string, items ...ports.SearchItem) {
	f.client.EXPECT().SearchIssues(mock.Anything, mock.Anything, query, 100).Return(items, nil).Maybe()
}

// enrich registers detail and check-run responses for item
func (f *aggregatorFixture) enrich(item ports.SearchItem, detail *ports.PullRequestDetail, runs ...ports.CheckRun) {
	f.client.EXPECT().GetPullRequest(mock.Anything, mock.Anything, item.PullRequestURL).Return(detail, nil).Maybe()
	if detail != nil && detail.HeadSHA != "" {
		f.client.EXPECT().ListCheckRuns(mock.Anything, mock.Anything, item.RepositoryURL, detail.HeadSHA).Return(runs, nil).Maybe()
	}
}

func prItem(id int64, author string, age time.Duration) ports.SearchItem {
	return ports.SearchItem{
		Author:         author,
		CreatedAt:      aggregatorNow.Add(-age),
		HTMLURL:        fmt.Sprintf("https://github.com/acme/api/pull/%d", id),
		ID:             id,
		Number:         int(id),
		PullRequestURL: fmt.Sprintf("https://api.github.com/repos/acme/api/pulls/%d", id),
		RepositoryURL:  "https://api.github.com/repos/acme/api",
		Title:          fmt.Sprintf("PR %d", id),
	}
}

var passing = ports.CheckRun{Status: "completed", Conclusion: "success"}

func TestRefresh_NoAccountsYieldsEmptySnapshot(t *testing.T) {
	f := newAggregatorFixture(t)

	snap := f.aggregator().Refresh(context.Background(), domain.TriggerManual)

	require.NotNil(t, snap)
	assert.Empty(t, snap.Groups)
	assert.Zero(t, snap.Total)
	assert.Empty(t, snap.Warnings)
	assert.Equal(t, aggregatorNow, snap.CompletedAt)
	assert.NotEmpty(t, snap.ID)
}

func TestRefresh_DeduplicatesAcrossQueriesFirstSeenWins(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice",
		domain.NamedQuery{Label: "Review Requested", Query: "review-requested:@me"},
		domain.NamedQuery{Label: "Team", Query: "team-review-requested:@me"},
	)
	pr := prItem(42, "bob", time.Hour)
	f.search("review-requested:@me", pr)
	f.search("team-review-requested:@me", pr)
	f.enrich(pr, &ports.PullRequestDetail{HeadSHA: "sha42", RequestedReviewers: []string{"alice"}}, passing)

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	assert.Equal(t, 1, snap.Total)
	require.Len(t, snap.Groups, 2)
	assert.Equal(t, "Review Requested", snap.Groups[0].Label)
	require.Len(t, snap.Groups[0].Rows, 1)
	assert.Empty(t, snap.Groups[1].Rows, "the duplicate from the second query is dropped")

	row := snap.Groups[0].Rows[0]
	assert.Equal(t, "work_42", row.Key)
	assert.Equal(t, "acme/api", row.Record.Repo)
	assert.Equal(t, "1h", row.Age)
	assert.Equal(t, domain.CheckStatusSuccess, row.Record.CheckStatus)
	assert.Equal(t, domain.StatusReview, row.Label)
}

func TestRefresh_DeduplicatesAcrossAccountsAndSharesLabels(t *testing.T) {
	f := newAggregatorFixture(t)
	work := f.account("work", "alice", domain.NamedQuery{Label: "Mine", Query: "q-work"})
	home := f.account("home", "alice2", domain.NamedQuery{Label: "Mine", Query: "q-home"})
	shared := prItem(1, "alice", time.Hour)
	onlyHome := prItem(2, "alice2", 2*time.Hour)
	f.search("q-work", shared)
	f.search("q-home", shared, onlyHome)
	f.enrich(shared, &ports.PullRequestDetail{HeadSHA: "s1"}, passing)
	f.enrich(onlyHome, &ports.PullRequestDetail{HeadSHA: "s2"}, passing)

	snap := f.aggregator(work, home).Refresh(context.Background(), domain.TriggerTimer)

	require.Len(t, snap.Groups, 1)
	rows := snap.Groups[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "work_1", rows[0].Key, "the first account in configuration order keeps the row")
	assert.Equal(t, "home_2", rows[1].Key)
	assert.Equal(t, domain.StatusWaiting, rows[1].Label)
	assert.Equal(t, domain.TriggerTimer, snap.Trigger)
}

func TestRefresh_EscalatesFailingChecksOnOwnPR(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice", domain.NamedQuery{Label: "My PRs", Query: "author:@me"})
	pr := prItem(7, "alice", time.Hour)
	f.search("author:@me", pr)
	f.enrich(pr, &ports.PullRequestDetail{HeadSHA: "s7"}, ports.CheckRun{Status: "completed", Conclusion: "failure"})

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	row := snap.Groups[0].Rows[0]
	assert.Equal(t, domain.PriorityHigh, row.Priority)
	assert.Equal(t, domain.StatusChecksFailing, row.Label)
	assert.Equal(t, domain.CheckStatusFailing, row.Record.CheckStatus)
}

func TestRefresh_RefinedClassificationReplacesCoarse(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice", domain.NamedQuery{Label: "Review Requested", Query: "review-requested:@me"})
	pr := prItem(9, "bob", time.Hour)
	f.search("review-requested:@me", pr)
	f.enrich(pr, &ports.PullRequestDetail{HeadSHA: "s9", RequestedTeams: []string{"platform"}}, passing)

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	row := snap.Groups[0].Rows[0]
	assert.Equal(t, domain.PriorityMedium, row.Priority)
	assert.Equal(t, domain.StatusTeamReview, row.Label)
	require.NotNil(t, row.Record.Reviewers)
	assert.Equal(t, []string{"platform"}, row.Record.Reviewers.Teams)
}

func TestRefresh_EnrichmentFailureKeepsCoarseClassification(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice", domain.NamedQuery{Label: "Review Requested", Query: "review-requested:@me"})
	pr := prItem(5, "bob", time.Hour)
	f.search("review-requested:@me", pr)
	f.client.EXPECT().GetPullRequest(mock.Anything, mock.Anything, pr.PullRequestURL).
		Return(nil, errors.New("connection refused"))

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	row := snap.Groups[0].Rows[0]
	assert.Equal(t, domain.CheckStatusUnknown, row.Record.CheckStatus)
	assert.Equal(t, domain.StatusReview, row.Label)
	require.Len(t, snap.Warnings, 1)
	assert.Equal(t, domain.WarningEnrichmentFailure, snap.Warnings[0].Kind)
	assert.Contains(t, snap.Warnings[0].Message, "1 PRs")
}

func TestRefresh_AccountWithoutCredentials(t *testing.T) {
	f := newAggregatorFixture(t)
	work := f.account("work", "alice", domain.NamedQuery{Label: "Mine", Query: "q-work"})
	broken := domain.Account{ID: "broken", TokenEnvVar: "BROKEN_TOKEN"}
	f.creds.EXPECT().Lookup("BROKEN_TOKEN").Return("", false)
	pr := prItem(3, "alice", time.Hour)
	f.search("q-work", pr)
	f.enrich(pr, &ports.PullRequestDetail{HeadSHA: "s3"}, passing)

	snap := f.aggregator(broken, work).Refresh(context.Background(), domain.TriggerManual)

	assert.Equal(t, 1, snap.Total)
	require.Len(t, snap.Warnings, 1)
	assert.Equal(t, domain.WarningCredentialMissing, snap.Warnings[0].Kind)
	assert.Equal(t, "broken", snap.Warnings[0].Account)
}

func TestRefresh_SortsByPriorityThenNewest(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice", domain.NamedQuery{Label: "Everything", Query: "involves:@me"})
	oldWatching := prItem(1, "carol", 10*24*time.Hour)
	newWatching := prItem(2, "carol", time.Hour)
	assigned := prItem(3, "carol", 5*24*time.Hour)
	assigned.Assignees = []string{"alice"}
	f.search("involves:@me", oldWatching, newWatching, assigned)
	for _, pr := range []ports.SearchItem{oldWatching, newWatching, assigned} {
		f.enrich(pr, &ports.PullRequestDetail{HeadSHA: fmt.Sprintf("s%d", pr.ID)}, passing)
	}

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	rows := snap.Groups[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), rows[0].Record.ID)
	assert.Equal(t, int64(2), rows[1].Record.ID)
	assert.Equal(t, int64(1), rows[2].Record.ID)
	assert.Equal(t, "10d", rows[2].Age)
}

func TestRefresh_RegistersURLsAndDraftKind(t *testing.T) {
	f := newAggregatorFixture(t)
	acct := f.account("work", "alice", domain.NamedQuery{Label: "My PRs", Query: "author:@me"})
	pr := prItem(11, "alice", time.Minute*5)
	pr.Draft = true
	f.search("author:@me", pr)
	f.enrich(pr, &ports.PullRequestDetail{HeadSHA: "s11"})
	f.client.EXPECT().GetCombinedStatus(mock.Anything, mock.Anything, pr.RepositoryURL, "s11").Return("pending", nil)

	snap := f.aggregator(acct).Refresh(context.Background(), domain.TriggerManual)

	row := snap.Groups[0].Rows[0]
	assert.Equal(t, "My PRs (Draft)", row.Kind)
	assert.Equal(t, domain.CheckStatusPending, row.Record.CheckStatus)
	url, ok := f.urls.Lookup("work_11")
	assert.True(t, ok)
	assert.Equal(t, pr.HTMLURL, url)
}
