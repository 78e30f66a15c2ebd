package domain

import (
	"fmt"
	"time"
)

// FormatAge renders the time since createdAt as "now", "Nm", "Nh" or "Nd", and "?" when unknown
func FormatAge(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "?"
	}

	d := now.Sub(createdAt)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return "now"
	}
}
