package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
	"github.com/renato0307/prinbox/internal/ui"
)

// RunCmd starts the TUI dashboard
type RunCmd struct {
	NoBrowser bool `help:"Show the pull request URL instead of opening a browser"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	c := cli.Container

	keys, err := validatedKeys(c.Config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Follow-up cycles coalesced by the scheduler only reach the dashboard through here
	updates, unsubscribe := c.Scheduler.Subscribe()
	defer unsubscribe()

	var opener ports.URLOpener
	if !r.NoBrowser {
		opener = c.Opener
	}

	logging.Logger.Info("Starting prinbox TUI",
		"accounts", len(c.Config.Accounts),
		"interval", c.Config.RefreshInterval().String(),
		"layout", c.Config.General.Layout)

	p := tea.NewProgram(
		ui.NewModel(ui.ModelConfig{
			AutoRefresh:          true,
			Context:              ctx,
			Keys:                 keys,
			Layout:               c.Config.General.Layout,
			NotificationDuration: c.Config.NotificationDuration(),
			Opener:               opener,
			RefreshInterval:      c.Config.RefreshInterval(),
			Refresher:            c.Scheduler,
			StartupError:         c.ConfigError,
			Updates:              updates,
			URLs:                 c.URLs,
		}),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
