package domain

// Priority is the urgency tier of a row, lower sorts first
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// Status labels assigned by classification
const (
	StatusActionNeeded  = "Action Needed"
	StatusReview        = "Review"
	StatusAssigned      = "Assigned"
	StatusTeamReview    = "Team Review"
	StatusChangesNeeded = "Changes Needed"
	StatusApproved      = "Approved"
	StatusWaiting       = "Waiting"
	StatusWatching      = "Watching"
	StatusChecksFailing = "Checks Failing"
)

// Classification is the outcome of classifying one pull request for the viewer
type Classification struct {
	Label    string   // Human-readable status label
	Priority Priority // Urgency tier
}

// Icon returns the glyph rendered in front of the status label
func (c Classification) Icon() string {
	switch {
	case c.Priority == PriorityHigh:
		return "🔴"
	case c.Priority == PriorityMedium:
		return "🟡"
	case c.Label == StatusWatching:
		return "⚪"
	default:
		return "🟢"
	}
}
