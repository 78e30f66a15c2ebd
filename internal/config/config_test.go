package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/prinbox/internal/domain"
)

const sampleConfig = `
general:
  refresh_interval_seconds: 120
  layout: flat
accounts:
  - id: work
    label: Work
    api_base: https://ghe.example.com/api/v3
    token_env_var: WORK_TOKEN
    filters:
      scope: specific
      repos: [acme/api, acme/web]
      queries:
        - label: Review Requested
          query: "is:pr is:open review-requested:@me"
        - label: My PRs
          query: "is:pr is:open author:@me"
  - id: oss
    token_env_var: OSS_TOKEN
keys:
  refresh: R
  open: [enter, o]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", sampleConfig)

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 120*time.Second, cfg.RefreshInterval())
	assert.Equal(t, LayoutFlat, cfg.General.Layout)
	assert.Equal(t, 4, cfg.General.MaxConcurrency, "unset values use defaults")
	assert.Equal(t, 10*time.Second, cfg.NotificationDuration())
	assert.Equal(t, []string{"R"}, cfg.Keys["refresh"], "a single key is accepted as a list")
	assert.Equal(t, []string{"enter", "o"}, cfg.Keys["open"])

	accounts := cfg.DomainAccounts()
	require.Len(t, accounts, 2)

	work := accounts[0]
	assert.Equal(t, "Work", work.DisplayLabel())
	assert.Equal(t, "https://ghe.example.com/api/v3", work.BaseURL())
	assert.Equal(t, "WORK_TOKEN", work.TokenEnvVar)
	assert.Equal(t, domain.ScopeSpecific, work.Filters.Scope)
	assert.Equal(t, []string{"acme/api", "acme/web"}, work.Filters.Repos)
	assert.Equal(t, []domain.NamedQuery{
		{Label: "Review Requested", Query: "is:pr is:open review-requested:@me"},
		{Label: "My PRs", Query: "is:pr is:open author:@me"},
	}, work.Filters.Queries)

	oss := accounts[1]
	assert.Equal(t, "oss", oss.DisplayLabel())
	assert.Equal(t, domain.DefaultAPIBase, oss.BaseURL())
	assert.Equal(t, domain.ScopeAll, oss.Filters.Scope)
	assert.Empty(t, oss.Filters.Queries)
}

func TestLoadFile_EnvOverridesGeneral(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", sampleConfig)
	t.Setenv("PRINBOX_GENERAL_REFRESH_INTERVAL_SECONDS", "60")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.RefreshInterval())
}

func TestLoadFile_DotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", sampleConfig)
	writeFile(t, dir, ".env", "PRINBOX_TEST_DOTENV_NEW=from-file\nPRINBOX_TEST_DOTENV_SET=from-file\n")
	t.Setenv("PRINBOX_TEST_DOTENV_SET", "from-env")
	t.Cleanup(func() { os.Unsetenv("PRINBOX_TEST_DOTENV_NEW") })

	_, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("PRINBOX_TEST_DOTENV_NEW"))
	assert.Equal(t, "from-env", os.Getenv("PRINBOX_TEST_DOTENV_SET"))
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "general: [unclosed"},
		{"bad layout", "general:\n  layout: sideways\n"},
		{"interval too short", "general:\n  refresh_interval_seconds: 2\n"},
		{"bad scope", "accounts:\n  - id: x\n    filters:\n      scope: some\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", tt.content)

			cfg, err := LoadFile(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfig)
			require.NotNil(t, cfg)
			assert.Empty(t, cfg.Accounts, "a broken configuration degrades to no accounts")
			assert.Equal(t, 300*time.Second, cfg.RefreshInterval())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, domain.ErrConfig)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.DomainAccounts())
}

func TestCandidates(t *testing.T) {
	t.Setenv("PRINBOX_HOME", "/srv/prinbox")
	t.Setenv("PRINBOX_CONFIG", "/etc/prinbox.yaml")

	assert.Equal(t, []string{"/tmp/x.yaml"}, Candidates("/tmp/x.yaml"))
	assert.Equal(t, []string{"/etc/prinbox.yaml", "config.yaml", filepath.Join("/srv/prinbox", "config.yaml")}, Candidates(""))
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Accounts = []AccountConfig{{
		ID:          "work",
		Label:       "Work",
		TokenEnvVar: "WORK_TOKEN",
		Filters: FilterConfig{
			Scope:   "specific",
			Repos:   []string{"acme/api"},
			Queries: []QueryConfig{{Label: "Mine", Query: "is:pr author:@me"}},
		},
	}}
	cfg.Keys = KeyBindingsConfig{"refresh": {"R"}}

	require.NoError(t, Write(path, cfg))
	loaded, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, cfg.General, loaded.General)
	assert.Equal(t, cfg.Accounts, loaded.Accounts)
	assert.Equal(t, cfg.Keys, loaded.Keys)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"refresh", "open", "quit"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{name: "nil is valid", keys: nil},
		{name: "known names", keys: KeyBindingsConfig{"refresh": {"R"}, "open": {"enter", "o"}}},
		{name: "unknown name", keys: KeyBindingsConfig{"explode": {"x"}}, wantErr: "unknown key binding 'explode'"},
		{name: "empty key", keys: KeyBindingsConfig{"quit": {""}}, wantErr: "contains empty value"},
		{name: "duplicate key", keys: KeyBindingsConfig{"refresh": {"r"}, "quit": {"r"}}, wantErr: "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
