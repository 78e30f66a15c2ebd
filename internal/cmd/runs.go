package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/prinbox/internal/services"
	"github.com/renato0307/prinbox/internal/theme"
)

// RunsCmd lists recent refresh cycles from the run history
type RunsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of cycles to show" default:"20"`
}

// Run executes the runs command
func (r *RunsCmd) Run(cli *CLI) error {
	history := cli.Container.RunHistory
	if history == nil {
		return fmt.Errorf("run history is unavailable (could not open database)")
	}
	if r.Limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	runs, err := history.ListRecent(context.Background(), r.Limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return r.render(os.Stdout, services.NewRunViews(runs))
}

func (r *RunsCmd) render(w io.Writer, views []services.RunView) error {
	if r.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(views); err != nil {
			return fmt.Errorf("failed to encode runs: %w", err)
		}
		return nil
	}

	if len(views) == 0 {
		fmt.Fprintln(w, "No refresh cycles recorded yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		Headers("Started", "Trigger", "Duration", "Accounts", "PRs", "Warnings", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.ColumnHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, v := range views {
		t.Row(
			v.StartedAt.Local().Format("2006-01-02 15:04:05"),
			v.Trigger,
			(time.Duration(v.DurationMS) * time.Millisecond).String(),
			strconv.Itoa(v.Accounts),
			strconv.Itoa(v.Rows),
			strconv.Itoa(v.Warnings),
			v.ID,
		)
	}

	fmt.Fprintln(w, t.Render())
	return nil
}
