package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ui"
)

// Dashboard is the shared refresh engine viewers attach to
type Dashboard interface {
	ui.Refresher
	Latest() *domain.Snapshot
	Subscribe() (<-chan *domain.Snapshot, func())
}

// SSHConfig configures the SSH-served dashboard
type SSHConfig struct {
	Address              string
	AuthorizedKeysPath   string
	HostKeyDir           string // Directory holding the generated ed25519 host key
	Keys                 config.KeyBindingsConfig
	Layout               string
	NotificationDuration time.Duration
}

// SSHServer serves the dashboard to SSH clients. Every session gets its own
// view on the shared dashboard.
type SSHServer struct {
	address    string
	cfg        SSHConfig
	dashboard  Dashboard
	urls       ui.URLResolver
	wishServer *ssh.Server
}

// NewSSHServer creates a new SSH server instance
func NewSSHServer(cfg SSHConfig, dashboard Dashboard, urls ui.URLResolver) (*SSHServer, error) {
	s := &SSHServer{
		address:   cfg.Address,
		cfg:       cfg,
		dashboard: dashboard,
		urls:      urls,
	}

	if err := os.MkdirAll(cfg.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	hostKeyPath := filepath.Join(cfg.HostKeyDir, "id_ed25519")

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(publicKeyHandler(cfg.AuthorizedKeysPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the configured listen address
func (s *SSHServer) Address() string {
	return s.address
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *SSHServer) ListenAndServe() error {
	logging.Logger.Info("Starting SSH server", "address", s.address)
	if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("SSH server failed: %w", err)
	}
	return nil
}

// Shutdown stops accepting sessions and waits for open ones until ctx expires
func (s *SSHServer) Shutdown(ctx context.Context) error {
	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}

// sessionModel wraps ui.Model to log the session lifetime
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a dashboard model for each SSH session
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	updates, unsubscribe := s.dashboard.Subscribe()
	go func() {
		<-sess.Context().Done()
		unsubscribe()
	}()

	model := ui.NewModel(s.modelConfig(sess.Context(), updates))

	return &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

// modelConfig builds the per-session dashboard configuration. Remote viewers cannot
// use the server's browser, so no opener is set and the URL is shown instead.
func (s *SSHServer) modelConfig(ctx context.Context, updates <-chan *domain.Snapshot) ui.ModelConfig {
	return ui.ModelConfig{
		Context:              ctx,
		Initial:              s.dashboard.Latest(),
		Keys:                 s.cfg.Keys,
		Layout:               s.cfg.Layout,
		NotificationDuration: s.cfg.NotificationDuration,
		Refresher:            s.dashboard,
		Updates:              updates,
		URLs:                 s.urls,
	}
}
