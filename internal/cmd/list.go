package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/services"
	"github.com/renato0307/prinbox/internal/theme"
	"github.com/renato0307/prinbox/internal/ui"
)

// ListCmd runs a single refresh cycle and prints the inbox
type ListCmd struct {
	Flat   bool   `help:"Print every pull request in one list instead of one section per query"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	c := cli.Container

	if c.ConfigError != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", c.ConfigError)
	}

	logging.Logger.Info("Running one-shot refresh", "format", l.Format, "flat", l.Flat)
	snap, ran := c.Scheduler.Refresh(context.Background(), domain.TriggerOneShot)
	if !ran || snap == nil {
		return fmt.Errorf("refresh did not run")
	}

	for _, w := range snap.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.String())
	}

	return l.render(os.Stdout, snap, time.Now())
}

func (l *ListCmd) render(w io.Writer, snap *domain.Snapshot, now time.Time) error {
	if l.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(services.NewSnapshotView(snap, now, l.Flat)); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return nil
	}

	if snap.Total == 0 {
		fmt.Fprintln(w, "No pull requests need your attention.")
		return nil
	}

	if l.Flat {
		fmt.Fprintln(w, renderRows(snap.Flat(), now))
		return nil
	}

	for _, g := range snap.Groups {
		if len(g.Rows) == 0 {
			continue
		}
		fmt.Fprintln(w, theme.SectionTitleStyle.Render(fmt.Sprintf("📌 %s (%d)", g.Label, len(g.Rows))))
		fmt.Fprintln(w, renderRows(g.Rows, now))
	}
	return nil
}

// renderRows draws rows as a bordered table using the dashboard's columns
func renderRows(rows []domain.ClassifiedRow, now time.Time) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		Headers(ui.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.ColumnHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range rows {
		t.Row(ui.RowCells(r, now)...)
	}
	return t.Render()
}
