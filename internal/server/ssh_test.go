package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/domain"
)

type mapURLs map[string]string

func (m mapURLs) Lookup(key string) (string, bool) {
	url, ok := m[key]
	return url, ok
}

func TestNewSSHServer_ModelConfig(t *testing.T) {
	snap := &domain.Snapshot{ID: "latest"}
	dashboard := &stubDashboard{latest: snap}
	dir := t.TempDir()

	srv, err := NewSSHServer(SSHConfig{
		Address:              "127.0.0.1:0",
		AuthorizedKeysPath:   filepath.Join(dir, "authorized_keys"),
		HostKeyDir:           filepath.Join(dir, "ssh"),
		Keys:                 config.KeyBindingsConfig{"refresh": {"R"}},
		Layout:               config.LayoutFlat,
		NotificationDuration: 3 * time.Second,
	}, dashboard, mapURLs{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Address())
	assert.DirExists(t, filepath.Join(dir, "ssh"))

	updates := make(chan *domain.Snapshot)
	cfg := srv.modelConfig(context.Background(), updates)

	assert.Same(t, snap, cfg.Initial)
	assert.Nil(t, cfg.Opener, "remote sessions never open a browser on the server")
	assert.False(t, cfg.AutoRefresh, "the shared scheduler drives refreshes")
	assert.Equal(t, config.LayoutFlat, cfg.Layout)
	assert.Equal(t, []string{"R"}, cfg.Keys["refresh"])
	assert.NotNil(t, cfg.Updates)
}
