package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// Check run conclusions that mark CI as failing
var failingConclusions = map[string]bool{
	"failure":         true,
	"timed_out":       true,
	"action_required": true,
}

// CheckStatusResolver resolves CI status and outstanding review requests for a pull request
type CheckStatusResolver struct {
	reader ports.CheckStatusReader
}

// NewCheckStatusResolver creates a new CheckStatusResolver
func NewCheckStatusResolver(reader ports.CheckStatusReader) *CheckStatusResolver {
	return &CheckStatusResolver{reader: reader}
}

// Resolve returns the CI status and review requests of item. Failures never escape as a
// status: the returned status is unknown and the error describes what went wrong.
// Reviewer info is nil only when the pull request detail could not be read.
func (r *CheckStatusResolver) Resolve(
	ctx context.Context,
	creds ports.Credentials,
	item ports.SearchItem,
) (domain.CheckStatus, *domain.ReviewerInfo, error) {
	if item.PullRequestURL == "" {
		return domain.CheckStatusUnknown, nil, nil
	}

	detail, err := r.reader.GetPullRequest(ctx, creds, item.PullRequestURL)
	if err != nil {
		return domain.CheckStatusUnknown, nil, fmt.Errorf("%w: failed to get pull request %s: %w",
			domain.ErrEnrichmentFailed, item.PullRequestURL, err)
	}

	reviewers := &domain.ReviewerInfo{
		Reviewers: detail.RequestedReviewers,
		Teams:     detail.RequestedTeams,
	}

	if detail.HeadSHA == "" || item.RepositoryURL == "" {
		logging.Logger.Debug("No head commit to resolve checks for", "pr", item.PullRequestURL)
		return domain.CheckStatusUnknown, reviewers, nil
	}

	runs, err := r.reader.ListCheckRuns(ctx, creds, item.RepositoryURL, detail.HeadSHA)
	if err != nil {
		return domain.CheckStatusUnknown, reviewers, fmt.Errorf("%w: failed to list check runs for %s: %w",
			domain.ErrEnrichmentFailed, item.PullRequestURL, err)
	}

	if len(runs) > 0 {
		return statusFromCheckRuns(runs), reviewers, nil
	}

	// Repositories without check runs may still report through the legacy status API
	state, err := r.reader.GetCombinedStatus(ctx, creds, item.RepositoryURL, detail.HeadSHA)
	if err != nil {
		return domain.CheckStatusUnknown, reviewers, fmt.Errorf("%w: failed to get combined status for %s: %w",
			domain.ErrEnrichmentFailed, item.PullRequestURL, err)
	}

	return statusFromCombinedState(state), reviewers, nil
}

func statusFromCheckRuns(runs []ports.CheckRun) domain.CheckStatus {
	for _, run := range runs {
		if run.Status == "in_progress" || run.Status == "queued" {
			return domain.CheckStatusPending
		}
	}

	for _, run := range runs {
		if failingConclusions[run.Conclusion] {
			return domain.CheckStatusFailing
		}
	}

	concluded := 0
	for _, run := range runs {
		if run.Conclusion == "" {
			continue
		}
		if run.Conclusion != "success" {
			return domain.CheckStatusUnknown
		}
		concluded++
	}
	if concluded == 0 {
		return domain.CheckStatusUnknown
	}
	return domain.CheckStatusSuccess
}

func statusFromCombinedState(state string) domain.CheckStatus {
	switch strings.ToLower(state) {
	case "success":
		return domain.CheckStatusSuccess
	case "pending":
		return domain.CheckStatusPending
	case "failure", "error":
		return domain.CheckStatusFailing
	default:
		return domain.CheckStatusUnknown
	}
}
