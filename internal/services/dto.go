package services

import (
	"time"

	"github.com/renato0307/prinbox/internal/domain"
)

// SnapshotView is the JSON representation of a snapshot
type SnapshotView struct {
	CompletedAt time.Time     `json:"completed_at"`
	Groups      []GroupView   `json:"groups"`
	ID          string        `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	Total       int           `json:"total"`
	Trigger     string        `json:"trigger"`
	Warnings    []WarningView `json:"warnings"`
}

// GroupView is the JSON representation of a query group
type GroupView struct {
	Label string    `json:"label"`
	Rows  []RowView `json:"rows"`
}

// RowView is the JSON representation of a classified row
type RowView struct {
	Account   string     `json:"account"`
	Age       string     `json:"age"`
	Author    string     `json:"author"`
	Checks    string     `json:"checks"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Draft     bool       `json:"draft"`
	Kind      string     `json:"type"`
	Number    int        `json:"number"`
	Priority  string     `json:"priority"`
	Repo      string     `json:"repo"`
	Status    string     `json:"status"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
}

// WarningView is the JSON representation of a cycle warning
type WarningView struct {
	Account string `json:"account,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Query   string `json:"query,omitempty"`
}

// RunView is the JSON representation of a recorded refresh cycle
type RunView struct {
	Accounts    int       `json:"accounts"`
	CompletedAt time.Time `json:"completed_at"`
	DurationMS  int64     `json:"duration_ms"`
	ID          string    `json:"id"`
	Rows        int       `json:"rows"`
	StartedAt   time.Time `json:"started_at"`
	Trigger     string    `json:"trigger"`
	Warnings    int       `json:"warnings"`
}

// NewSnapshotView converts a snapshot, computing ages at now. When flat is set the
// rows are returned as a single group in priority order.
func NewSnapshotView(snap *domain.Snapshot, now time.Time, flat bool) SnapshotView {
	view := SnapshotView{
		CompletedAt: snap.CompletedAt,
		Groups:      []GroupView{},
		ID:          snap.ID,
		StartedAt:   snap.StartedAt,
		Total:       snap.Total,
		Trigger:     string(snap.Trigger),
		Warnings:    make([]WarningView, 0, len(snap.Warnings)),
	}

	if flat {
		view.Groups = append(view.Groups, GroupView{Label: "All", Rows: newRowViews(snap.Flat(), now)})
	} else {
		for _, g := range snap.Groups {
			view.Groups = append(view.Groups, GroupView{Label: g.Label, Rows: newRowViews(g.Rows, now)})
		}
	}

	for _, w := range snap.Warnings {
		view.Warnings = append(view.Warnings, WarningView{
			Account: w.Account,
			Kind:    string(w.Kind),
			Message: w.Message,
			Query:   w.Query,
		})
	}
	return view
}

func newRowViews(rows []domain.ClassifiedRow, now time.Time) []RowView {
	views := make([]RowView, 0, len(rows))
	for _, r := range rows {
		view := RowView{
			Account:  r.Record.AccountLabel,
			Age:      domain.FormatAge(r.Record.CreatedAt, now),
			Author:   r.Record.Author,
			Checks:   string(r.Record.CheckStatus),
			Draft:    r.Record.Draft,
			Kind:     r.Kind,
			Number:   r.Record.Number,
			Priority: r.Priority.String(),
			Repo:     r.Record.Repo,
			Status:   r.Label,
			Title:    r.Record.Title,
			URL:      r.Record.HTMLURL,
		}
		if !r.Record.CreatedAt.IsZero() {
			created := r.Record.CreatedAt
			view.CreatedAt = &created
		}
		views = append(views, view)
	}
	return views
}

// NewRunViews converts recorded refresh cycles
func NewRunViews(runs []domain.RefreshRun) []RunView {
	views := make([]RunView, 0, len(runs))
	for _, r := range runs {
		views = append(views, RunView{
			Accounts:    r.Accounts,
			CompletedAt: r.CompletedAt,
			DurationMS:  r.Duration().Milliseconds(),
			ID:          r.ID,
			Rows:        r.Rows,
			StartedAt:   r.StartedAt,
			Trigger:     string(r.Trigger),
			Warnings:    r.Warnings,
		})
	}
	return views
}
