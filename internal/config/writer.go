package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Write saves cfg as YAML at path, creating parent directories
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("general", map[string]any{
		"layout":                   cfg.General.Layout,
		"max_concurrency":          cfg.General.MaxConcurrency,
		"notification_seconds":     cfg.General.NotificationSeconds,
		"refresh_interval_seconds": cfg.General.RefreshIntervalSeconds,
	})

	accounts := make([]map[string]any, 0, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		queries := make([]map[string]any, 0, len(a.Filters.Queries))
		for _, q := range a.Filters.Queries {
			queries = append(queries, map[string]any{"label": q.Label, "query": q.Query})
		}
		account := map[string]any{
			"id":            a.ID,
			"label":         a.Label,
			"token_env_var": a.TokenEnvVar,
			"filters": map[string]any{
				"scope":   a.Filters.Scope,
				"repos":   a.Filters.Repos,
				"queries": queries,
			},
		}
		if a.APIBase != "" {
			account["api_base"] = a.APIBase
		}
		accounts = append(accounts, account)
	}
	v.Set("accounts", accounts)

	if len(cfg.Keys) > 0 {
		v.Set("keys", map[string][]string(cfg.Keys))
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
