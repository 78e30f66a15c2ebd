package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/ports"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"show" help:"Print the effective configuration" default:"1"`
}

// ConfigShowCmd prints the effective configuration. Tokens are never printed.
type ConfigShowCmd struct{}

// Run executes the config show command
func (s *ConfigShowCmd) Run(cli *CLI) error {
	c := cli.Container
	writeConfig(os.Stdout, c.Config, c.ConfigError, c.Credentials)
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config, cfgErr error, creds ports.CredentialSource) {
	if cfgErr != nil {
		fmt.Fprintf(w, "Warning: %v\n\n", cfgErr)
	}

	source := cfg.Path
	if source == "" {
		source = "none (defaults)"
	}
	fmt.Fprintf(w, "Config file:       %s\n", source)
	fmt.Fprintf(w, "Refresh interval:  %s\n", cfg.RefreshInterval())
	fmt.Fprintf(w, "Max concurrency:   %d\n", cfg.General.MaxConcurrency)
	fmt.Fprintf(w, "Layout:            %s\n", cfg.General.Layout)
	fmt.Fprintf(w, "Notifications:     %s\n", cfg.NotificationDuration())

	fmt.Fprintf(w, "\nAccounts (%d):\n", len(cfg.Accounts))
	if len(cfg.Accounts) == 0 {
		fmt.Fprintln(w, "  none configured, run 'prinbox init'")
	}
	for _, a := range cfg.DomainAccounts() {
		fmt.Fprintf(w, "  %s\n", a.DisplayLabel())
		fmt.Fprintf(w, "    API base:  %s\n", a.BaseURL())
		fmt.Fprintf(w, "    Token:     %s\n", tokenState(a.TokenEnvVar, creds))
		fmt.Fprintf(w, "    Scope:     %s\n", a.Filters.Scope)
		if len(a.Filters.Repos) > 0 {
			fmt.Fprintf(w, "    Repos:     %s\n", strings.Join(a.Filters.Repos, ", "))
		}
		if len(a.Filters.Queries) == 0 {
			fmt.Fprintln(w, "    Queries:   default (Review Requested)")
			continue
		}
		fmt.Fprintln(w, "    Queries:")
		for _, q := range a.Filters.Queries {
			fmt.Fprintf(w, "      %s: %s\n", q.Label, q.Query)
		}
	}

	if len(cfg.Keys) > 0 {
		names := make([]string, 0, len(cfg.Keys))
		for name := range cfg.Keys {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "\nCustom keys:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-12s %s\n", name, strings.Join(cfg.Keys[name], ", "))
		}
	}
}

// tokenState reports whether a token is available without revealing it
func tokenState(envVar string, creds ports.CredentialSource) string {
	if envVar == "" {
		return "no token_env_var configured"
	}
	if _, ok := creds.Lookup(envVar); ok {
		return envVar + " (set)"
	}
	return envVar + " (not set)"
}
