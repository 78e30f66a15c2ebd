package services

import (
	"strings"

	"github.com/renato0307/prinbox/internal/domain"
)

// Label fragments that mark a viewer-authored pull request as needing changes
var changesNeededMarkers = []string{"changes", "requested", "wip", "blocked"}

// ClassifyInput carries the signals used to classify one pull request for a viewer
type ClassifyInput struct {
	Assignees  []string
	Author     string
	Labels     []string
	QueryLabel string
	Reviewers  *domain.ReviewerInfo // nil when review requests are not known
	Viewer     string
}

// ClassifyInputFor builds the classifier input from a record as seen by viewer
func ClassifyInputFor(record domain.PullRequestRecord, viewer string) ClassifyInput {
	return ClassifyInput{
		Assignees:  record.Assignees,
		Author:     record.Author,
		Labels:     record.Labels,
		QueryLabel: record.QueryLabel,
		Reviewers:  record.Reviewers,
		Viewer:     viewer,
	}
}

// Classify assigns a priority tier and status label. The first matching rule wins.
func Classify(in ClassifyInput) domain.Classification {
	isAuthor := in.Viewer != "" && strings.EqualFold(in.Author, in.Viewer)
	isAssigned := in.Viewer != "" && containsFold(in.Assignees, in.Viewer)

	individual, team := false, false
	if isReviewRequestQuery(in.QueryLabel) {
		if in.Reviewers != nil {
			individual = in.Viewer != "" && containsFold(in.Reviewers.Reviewers, in.Viewer)
			team = len(in.Reviewers.Teams) > 0 && !individual
		} else {
			// The search itself says the viewer was asked to review
			individual = true
		}
	}

	switch {
	case individual && isAssigned:
		return domain.Classification{Priority: domain.PriorityHigh, Label: domain.StatusActionNeeded}
	case individual:
		return domain.Classification{Priority: domain.PriorityHigh, Label: domain.StatusReview}
	case isAssigned:
		return domain.Classification{Priority: domain.PriorityHigh, Label: domain.StatusAssigned}
	case team:
		return domain.Classification{Priority: domain.PriorityMedium, Label: domain.StatusTeamReview}
	case isAuthor && labelsNeedChanges(in.Labels):
		return domain.Classification{Priority: domain.PriorityMedium, Label: domain.StatusChangesNeeded}
	case isAuthor && strings.Contains(strings.ToLower(in.QueryLabel), "approved"):
		return domain.Classification{Priority: domain.PriorityLow, Label: domain.StatusApproved}
	case isAuthor:
		return domain.Classification{Priority: domain.PriorityLow, Label: domain.StatusWaiting}
	default:
		return domain.Classification{Priority: domain.PriorityLow, Label: domain.StatusWatching}
	}
}

// EscalateFailingChecks raises a viewer-authored pull request with failing CI to the top tier
func EscalateFailingChecks(c domain.Classification, record domain.PullRequestRecord, viewer string) domain.Classification {
	if viewer == "" || !strings.EqualFold(record.Author, viewer) {
		return c
	}
	if record.CheckStatus != domain.CheckStatusFailing {
		return c
	}
	return domain.Classification{Priority: domain.PriorityHigh, Label: domain.StatusChecksFailing}
}

func isReviewRequestQuery(queryLabel string) bool {
	lower := strings.ToLower(queryLabel)
	return strings.Contains(lower, "review-requested:@me") || strings.Contains(lower, "review requested")
}

func labelsNeedChanges(labels []string) bool {
	joined := strings.ToLower(strings.Join(labels, " "))
	for _, marker := range changesNeededMarkers {
		if strings.Contains(joined, marker) {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
