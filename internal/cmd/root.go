package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Config      string           `help:"Path to config.yaml (overrides $PRINBOX_CONFIG)" short:"c"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Version     kong.VersionFlag `help:"Show version information"`

	Run       RunCmd    `cmd:"run" help:"Start the pull request dashboard (default)" default:"1"`
	List      ListCmd   `cmd:"list" help:"Run one refresh cycle and print the result"`
	Serve     ServeCmd  `cmd:"serve" help:"Run the scheduler with an SSH dashboard and an HTTP status API"`
	Init      InitCmd   `cmd:"init" help:"Create a configuration file interactively"`
	Runs      RunsCmd   `cmd:"runs" help:"Show recent refresh cycles"`
	ConfigCmd ConfigCmd `cmd:"config" name:"config" help:"Inspect the configuration"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging, loads the configuration and wires the container
func (c *CLI) AfterApply() error {
	// Initialize logging first so config loading is traced
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("PRINBOX_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PRINBOX_DEBUG_FILE", logFilePath)
		}
	}

	// A broken configuration is not fatal: the dashboard starts empty and shows the error once
	cfg, cfgErr := config.Load(c.Config)
	if cfgErr != nil {
		logging.Logger.Warn("Configuration not loaded", "error", cfgErr)
	}

	container, err := NewContainer(cfg, cfgErr)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// validatedKeys returns the custom key bindings after checking them against known actions
func validatedKeys(cfg *config.Config) (config.KeyBindingsConfig, error) {
	if cfg == nil || len(cfg.Keys) == 0 {
		return nil, nil
	}
	if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in %s: %w", cfg.Path, err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated", "count", len(cfg.Keys))
	return cfg.Keys, nil
}
