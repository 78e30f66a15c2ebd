package cmd

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
)

var (
	accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	envVarPattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	repoPattern      = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
)

// presetQueries are the searches offered by the wizard, keyed by form value
var presetQueries = []config.QueryConfig{
	{Label: "Review Requested", Query: "is:pr is:open review-requested:@me"},
	{Label: "My PRs", Query: "is:pr is:open author:@me"},
	{Label: "Assigned", Query: "is:pr is:open assignee:@me"},
	{Label: "Mentioned", Query: "is:pr is:open mentions:@me"},
}

// InitCmd writes a starter configuration file
type InitCmd struct {
	Force bool   `help:"Overwrite an existing configuration file"`
	Path  string `help:"Where to write the configuration (default $PRINBOX_HOME/config.yaml)"`
}

// initAnswers holds the values collected by the wizard
type initAnswers struct {
	APIBase         string
	ID              string
	Label           string
	Layout          string
	Queries         []string
	RefreshInterval string
	Repos           string
	Scope           string
	TokenEnvVar     string
}

func defaultInitAnswers() initAnswers {
	return initAnswers{
		APIBase:         "https://api.github.com",
		ID:              "github",
		Layout:          config.LayoutGrouped,
		Queries:         []string{presetQueries[0].Label, presetQueries[1].Label},
		RefreshInterval: "300",
		Scope:           string(domain.ScopeAll),
		TokenEnvVar:     "GITHUB_TOKEN",
	}
}

// Run executes the init command
func (i *InitCmd) Run() error {
	path := i.Path
	if path == "" {
		path = config.DefaultConfigPath()
	}
	path = config.ExpandPath(path)

	if _, err := os.Stat(path); err == nil && !i.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	answers := defaultInitAnswers()
	if err := newInitForm(&answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Aborted, nothing written.")
			return nil
		}
		return fmt.Errorf("failed to run setup form: %w", err)
	}

	cfg, err := answers.toConfig()
	if err != nil {
		return err
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	logging.Logger.Info("Configuration written", "path", path, "account", answers.ID)
	fmt.Printf("Configuration written to %s\n", path)
	if _, ok := os.LookupEnv(answers.TokenEnvVar); !ok {
		fmt.Printf("Remember to export %s with a personal access token before running prinbox.\n", answers.TokenEnvVar)
	}
	return nil
}

func newInitForm(a *initAnswers) *huh.Form {
	queryOptions := make([]huh.Option[string], 0, len(presetQueries))
	for _, q := range presetQueries {
		queryOptions = append(queryOptions, huh.NewOption(fmt.Sprintf("%s (%s)", q.Label, q.Query), q.Label))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account id").
				Description("Short name used in URL keys and warnings").
				Value(&a.ID).
				Validate(validateAccountID),
			huh.NewInput().
				Title("Label (optional)").
				Description("Shown in the Account column. Defaults to the id.").
				Value(&a.Label),
			huh.NewInput().
				Title("Token environment variable").
				Description("The token itself is never stored in the configuration").
				Value(&a.TokenEnvVar).
				Validate(validateEnvVar),
			huh.NewInput().
				Title("API base URL").
				Description("Change for GitHub Enterprise, e.g. https://ghe.example.com/api/v3").
				Value(&a.APIBase),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Repository scope").
				Options(
					huh.NewOption("All repositories", string(domain.ScopeAll)),
					huh.NewOption("Specific repositories", string(domain.ScopeSpecific)),
				).
				Value(&a.Scope),
			huh.NewInput().
				Title("Repositories").
				Description("Comma-separated owner/name list, used when scope is specific").
				Placeholder("acme/api, acme/web").
				Value(&a.Repos).
				Validate(validateRepos),
			huh.NewMultiSelect[string]().
				Title("Searches").
				Options(queryOptions...).
				Value(&a.Queries),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval (seconds)").
				Value(&a.RefreshInterval).
				Validate(validateInterval),
			huh.NewSelect[string]().
				Title("Layout").
				Options(
					huh.NewOption("Grouped by search", config.LayoutGrouped),
					huh.NewOption("Single list", config.LayoutFlat),
				).
				Value(&a.Layout),
		),
	)
}

// toConfig converts the wizard answers into a configuration with one account
func (a initAnswers) toConfig() (*config.Config, error) {
	if err := validateAccountID(a.ID); err != nil {
		return nil, err
	}
	if err := validateEnvVar(a.TokenEnvVar); err != nil {
		return nil, err
	}
	if err := validateInterval(a.RefreshInterval); err != nil {
		return nil, err
	}

	repos := splitRepos(a.Repos)
	if a.Scope == string(domain.ScopeSpecific) && len(repos) == 0 {
		return nil, fmt.Errorf("at least one repository is required when scope is specific")
	}

	var queries []config.QueryConfig
	for _, q := range presetQueries {
		for _, selected := range a.Queries {
			if selected == q.Label {
				queries = append(queries, q)
				break
			}
		}
	}

	interval, _ := strconv.Atoi(strings.TrimSpace(a.RefreshInterval))

	cfg := config.Default()
	cfg.General.Layout = a.Layout
	cfg.General.RefreshIntervalSeconds = interval
	cfg.Accounts = []config.AccountConfig{{
		APIBase: strings.TrimSpace(a.APIBase),
		Filters: config.FilterConfig{
			Queries: queries,
			Repos:   repos,
			Scope:   a.Scope,
		},
		ID:          strings.TrimSpace(a.ID),
		Label:       strings.TrimSpace(a.Label),
		TokenEnvVar: strings.TrimSpace(a.TokenEnvVar),
	}}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitRepos(s string) []string {
	var repos []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			repos = append(repos, part)
		}
	}
	return repos
}

func validateAccountID(s string) error {
	if !accountIDPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("account id must be letters, digits, '-' or '_'")
	}
	return nil
}

func validateEnvVar(s string) error {
	if !envVarPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("not a valid environment variable name")
	}
	return nil
}

func validateRepos(s string) error {
	for _, repo := range splitRepos(s) {
		if !repoPattern.MatchString(repo) {
			return fmt.Errorf("%q is not in owner/name form", repo)
		}
	}
	return nil
}

func validateInterval(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("refresh interval must be a number of seconds")
	}
	if n < 10 {
		return fmt.Errorf("refresh interval must be at least 10 seconds")
	}
	return nil
}
