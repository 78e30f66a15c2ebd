package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// DefaultMaxConcurrency bounds parallel account fetches and enrichment calls
const DefaultMaxConcurrency = 4

// pendingRow is a deduplicated row waiting for enrichment
type pendingRow struct {
	creds  *ports.Credentials
	err    error
	group  int
	item   ports.SearchItem
	revs   *domain.ReviewerInfo
	row    domain.ClassifiedRow
	status domain.CheckStatus
}

// Aggregator runs one complete refresh cycle across all accounts
type Aggregator struct {
	accounts       []domain.Account
	fetcher        *AccountFetcher
	maxConcurrency int
	now            func() time.Time
	resolver       *CheckStatusResolver
	urls           *URLTable
}

// NewAggregator creates a new Aggregator
func NewAggregator(
	accounts []domain.Account,
	fetcher *AccountFetcher,
	resolver *CheckStatusResolver,
	urls *URLTable,
	maxConcurrency int,
) *Aggregator {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Aggregator{
		accounts:       accounts,
		fetcher:        fetcher,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
		resolver:       resolver,
		urls:           urls,
	}
}

// Refresh fetches, deduplicates, enriches, classifies and sorts every account's pull requests.
// It never fails: every problem below the cycle level ends up in Snapshot.Warnings.
func (a *Aggregator) Refresh(ctx context.Context, trigger domain.Trigger) *domain.Snapshot {
	snap := &domain.Snapshot{
		Accounts:  len(a.accounts),
		ID:        uuid.New().String(),
		StartedAt: a.now(),
		Trigger:   trigger,
	}

	logging.Logger.Info("Refresh started", "snapshot_id", snap.ID, "trigger", trigger, "accounts", len(a.accounts))

	fetches := a.fetchAll(ctx)
	for _, f := range fetches {
		snap.Warnings = append(snap.Warnings, f.Warnings...)
	}

	groupIndex := make(map[string]int)
	var rows []*pendingRow
	seen := make(map[int64]bool)

	for _, f := range fetches {
		for _, result := range f.Results {
			gi, ok := groupIndex[result.QueryLabel]
			if !ok {
				gi = len(snap.Groups)
				groupIndex[result.QueryLabel] = gi
				snap.Groups = append(snap.Groups, domain.QueryGroup{Label: result.QueryLabel})
			}

			for _, item := range result.Items {
				if seen[item.ID] {
					continue
				}
				seen[item.ID] = true

				record := recordFromItem(item, result)
				rows = append(rows, &pendingRow{
					creds: f.Credentials,
					group: gi,
					item:  item,
					row: domain.ClassifiedRow{
						Classification: Classify(ClassifyInputFor(record, result.Username)),
						Key:            domain.RowKey(result.AccountLabel, item.ID),
						Kind:           domain.KindFor(result.QueryLabel, item.Draft),
						Record:         record,
						Viewer:         result.Username,
					},
					status: domain.CheckStatusUnknown,
				})
			}
		}
	}

	a.enrichAll(ctx, rows)

	now := a.now()
	enrichmentFailures := 0
	for _, p := range rows {
		if p.err != nil {
			enrichmentFailures++
			logging.Logger.Debug("Enrichment failed", "pr", p.item.HTMLURL, "error", p.err)
		}

		p.row.Record.CheckStatus = p.status
		// Without reviewer info the query-based classification stands; reclassifying
		// with empty reviewers would drop rows out of their review categories
		if p.revs != nil {
			p.row.Record.Reviewers = p.revs
			p.row.Classification = Classify(ClassifyInputFor(p.row.Record, p.row.Viewer))
		}
		p.row.Classification = EscalateFailingChecks(p.row.Classification, p.row.Record, p.row.Viewer)
		p.row.Age = domain.FormatAge(p.row.Record.CreatedAt, now)

		a.urls.Put(p.row.Key, p.row.Record.HTMLURL)
		snap.Groups[p.group].Rows = append(snap.Groups[p.group].Rows, p.row)
	}

	if enrichmentFailures > 0 {
		snap.Warnings = append(snap.Warnings, domain.Warning{
			Kind:    domain.WarningEnrichmentFailure,
			Message: fmt.Sprintf("checks unavailable for %d PRs", enrichmentFailures),
		})
	}

	for i := range snap.Groups {
		domain.SortRows(snap.Groups[i].Rows)
	}

	snap.Total = len(rows)
	snap.CompletedAt = a.now()

	logging.Logger.Info("Refresh completed",
		"snapshot_id", snap.ID,
		"rows", snap.Total,
		"groups", len(snap.Groups),
		"warnings", len(snap.Warnings),
		"duration", snap.CompletedAt.Sub(snap.StartedAt).String())

	return snap
}

// fetchAll fetches every account concurrently, keeping results in account order
func (a *Aggregator) fetchAll(ctx context.Context) []AccountFetch {
	fetches := make([]AccountFetch, len(a.accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrency)
	for i, account := range a.accounts {
		g.Go(func() error {
			fetches[i] = a.fetcher.Fetch(gctx, account)
			return nil
		})
	}
	_ = g.Wait()

	return fetches
}

// enrichAll resolves CI status for every row whose account has credentials
func (a *Aggregator) enrichAll(ctx context.Context, rows []*pendingRow) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrency)
	for _, p := range rows {
		if p.creds == nil {
			continue
		}
		g.Go(func() error {
			p.status, p.revs, p.err = a.resolver.Resolve(gctx, *p.creds, p.item)
			return nil
		})
	}
	_ = g.Wait()
}

func recordFromItem(item ports.SearchItem, result AccountResult) domain.PullRequestRecord {
	return domain.PullRequestRecord{
		AccountLabel:  result.AccountLabel,
		Assignees:     item.Assignees,
		Author:        item.Author,
		CheckStatus:   domain.CheckStatusUnknown,
		CreatedAt:     item.CreatedAt,
		DetailURL:     item.PullRequestURL,
		Draft:         item.Draft,
		HTMLURL:       item.HTMLURL,
		ID:            item.ID,
		Labels:        item.Labels,
		Number:        item.Number,
		QueryLabel:    result.QueryLabel,
		Repo:          domain.RepoFromURL(item.RepositoryURL),
		RepositoryURL: item.RepositoryURL,
		Title:         item.Title,
	}
}
