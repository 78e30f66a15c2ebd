package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
)

// Layouts supported by the dashboard
const (
	LayoutFlat    = "flat"
	LayoutGrouped = "grouped"
)

const (
	defaultMaxConcurrency      = 4
	defaultNotificationSeconds = 10
	defaultRefreshSeconds      = 300
	minRefreshSeconds          = 10
)

// Config is the parsed contents of config.yaml
type Config struct {
	Accounts []AccountConfig   `mapstructure:"accounts"`
	General  GeneralConfig     `mapstructure:"general"`
	Keys     KeyBindingsConfig `mapstructure:"keys"`
	Path     string            `mapstructure:"-"` // File the configuration was read from
}

// GeneralConfig holds application-wide settings
type GeneralConfig struct {
	Layout                 string `mapstructure:"layout"`
	MaxConcurrency         int    `mapstructure:"max_concurrency"`
	NotificationSeconds    int    `mapstructure:"notification_seconds"`
	RefreshIntervalSeconds int    `mapstructure:"refresh_interval_seconds"`
}

// AccountConfig is one entry of the accounts list
type AccountConfig struct {
	APIBase     string       `mapstructure:"api_base"`
	Filters     FilterConfig `mapstructure:"filters"`
	ID          string       `mapstructure:"id"`
	Label       string       `mapstructure:"label"`
	TokenEnvVar string       `mapstructure:"token_env_var"`
}

// FilterConfig is the filters block of an account
type FilterConfig struct {
	Queries []QueryConfig `mapstructure:"queries"`
	Repos   []string      `mapstructure:"repos"`
	Scope   string        `mapstructure:"scope"`
}

// QueryConfig is one configured search
type QueryConfig struct {
	Label string `mapstructure:"label"`
	Query string `mapstructure:"query"`
}

// Default returns a configuration with no accounts and default general settings
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Layout:                 LayoutGrouped,
			MaxConcurrency:         defaultMaxConcurrency,
			NotificationSeconds:    defaultNotificationSeconds,
			RefreshIntervalSeconds: defaultRefreshSeconds,
		},
	}
}

// RefreshInterval returns the refresh interval as a duration
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.General.RefreshIntervalSeconds) * time.Second
}

// NotificationDuration returns how long notifications stay on screen
func (c *Config) NotificationDuration() time.Duration {
	return time.Duration(c.General.NotificationSeconds) * time.Second
}

// DomainAccounts converts the configured accounts to domain accounts
func (c *Config) DomainAccounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		queries := make([]domain.NamedQuery, 0, len(a.Filters.Queries))
		for _, q := range a.Filters.Queries {
			queries = append(queries, domain.NamedQuery{Label: q.Label, Query: q.Query})
		}

		scope := domain.ScopeAll
		if strings.EqualFold(strings.TrimSpace(a.Filters.Scope), string(domain.ScopeSpecific)) {
			scope = domain.ScopeSpecific
		}

		accounts = append(accounts, domain.Account{
			APIBase: a.APIBase,
			Filters: domain.FilterConfig{
				Queries: queries,
				Repos:   a.Filters.Repos,
				Scope:   scope,
			},
			ID:          a.ID,
			Label:       a.Label,
			TokenEnvVar: a.TokenEnvVar,
		})
	}
	return accounts
}

// Validate checks the configuration and normalizes general settings
func (c *Config) Validate() error {
	var errs []error

	c.General.Layout = strings.ToLower(strings.TrimSpace(c.General.Layout))
	switch c.General.Layout {
	case "":
		c.General.Layout = LayoutGrouped
	case LayoutGrouped, LayoutFlat:
	default:
		errs = append(errs, fmt.Errorf("general.layout must be %q or %q, got %q", LayoutGrouped, LayoutFlat, c.General.Layout))
	}

	if c.General.RefreshIntervalSeconds <= 0 {
		c.General.RefreshIntervalSeconds = defaultRefreshSeconds
	} else if c.General.RefreshIntervalSeconds < minRefreshSeconds {
		errs = append(errs, fmt.Errorf("general.refresh_interval_seconds must be at least %d", minRefreshSeconds))
	}
	if c.General.MaxConcurrency <= 0 {
		c.General.MaxConcurrency = defaultMaxConcurrency
	}
	if c.General.NotificationSeconds <= 0 {
		c.General.NotificationSeconds = defaultNotificationSeconds
	}

	for i, a := range c.Accounts {
		scope := strings.ToLower(strings.TrimSpace(a.Filters.Scope))
		if scope != "" && scope != string(domain.ScopeAll) && scope != string(domain.ScopeSpecific) {
			errs = append(errs, fmt.Errorf("accounts[%d].filters.scope must be %q or %q, got %q",
				i, domain.ScopeAll, domain.ScopeSpecific, a.Filters.Scope))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrConfig, errors.Join(errs...))
	}
	return nil
}

// Candidates returns the config file locations searched, in order
func Candidates(explicit string) []string {
	if explicit != "" {
		return []string{ExpandPath(explicit)}
	}
	var paths []string
	if env := os.Getenv("PRINBOX_CONFIG"); env != "" {
		paths = append(paths, ExpandPath(env))
	}
	return append(paths, "config.yaml", DefaultConfigPath())
}

// Load reads the configuration. When it fails the returned config still carries
// defaults and no accounts, and the error wraps domain.ErrConfig.
func Load(explicit string) (*Config, error) {
	path := ""
	for _, candidate := range Candidates(explicit) {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return Default(), fmt.Errorf("%w: no configuration file found (looked in %s)",
			domain.ErrConfig, strings.Join(Candidates(explicit), ", "))
	}

	return LoadFile(path)
}

// LoadFile reads the configuration at path
func LoadFile(path string) (*Config, error) {
	loadDotEnv(filepath.Dir(path))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PRINBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("%w: failed to read %s: %w", domain.ErrConfig, path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return Default(), fmt.Errorf("%w: failed to parse %s: %w", domain.ErrConfig, path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		fallback := Default()
		fallback.Path = path
		return fallback, err
	}

	logging.Logger.Info("Configuration loaded",
		"path", path,
		"accounts", len(cfg.Accounts),
		"refresh_interval_seconds", cfg.General.RefreshIntervalSeconds)

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.layout", LayoutGrouped)
	v.SetDefault("general.max_concurrency", defaultMaxConcurrency)
	v.SetDefault("general.notification_seconds", defaultNotificationSeconds)
	v.SetDefault("general.refresh_interval_seconds", defaultRefreshSeconds)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"general.layout",
		"general.max_concurrency",
		"general.notification_seconds",
		"general.refresh_interval_seconds",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// loadDotEnv seeds the environment from .env files next to the config and in the
// working directory, without overriding variables that are already set
func loadDotEnv(configDir string) {
	files := []string{filepath.Join(configDir, ".env")}
	if abs, err := filepath.Abs(configDir); err == nil {
		if cwd, err := os.Getwd(); err == nil && cwd != abs {
			files = append(files, ".env")
		}
	}

	for _, file := range files {
		envMap, err := godotenv.Read(file)
		if err != nil {
			continue
		}
		loaded := 0
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
				loaded++
			}
		}
		logging.Logger.Debug("Loaded .env file", "path", file, "variables", loaded)
	}
}
