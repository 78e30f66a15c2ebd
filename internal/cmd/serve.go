package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adapterlock "github.com/renato0307/prinbox/internal/adapters/lock"
	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/server"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd runs the scheduler in the background and exposes the dashboard over SSH and HTTP
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file allowed to open the SSH dashboard (default ~/.ssh/authorized_keys)"`
	HTTPAddr       string `help:"Listen address for the HTTP status API (empty disables it)" default:"localhost:8484"`
	SSHAddr        string `help:"Listen address for the SSH dashboard (empty disables it)" default:"localhost:23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	c := cli.Container

	if s.SSHAddr == "" && s.HTTPAddr == "" {
		return fmt.Errorf("nothing to serve: both --ssh-addr and --http-addr are empty")
	}

	keys, err := validatedKeys(c.Config)
	if err != nil {
		return err
	}

	lock := adapterlock.NewFileLock(config.LockPath())
	if err := lock.TryLock(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	if c.ConfigError != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", c.ConfigError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Scheduler.Run(gctx)
	})

	if s.SSHAddr != "" {
		authorizedKeys := s.AuthorizedKeys
		if authorizedKeys == "" {
			authorizedKeys, err = server.DefaultAuthorizedKeysPath()
			if err != nil {
				return fmt.Errorf("failed to locate authorized_keys: %w", err)
			}
		}

		sshServer, err := server.NewSSHServer(server.SSHConfig{
			Address:              s.SSHAddr,
			AuthorizedKeysPath:   config.ExpandPath(authorizedKeys),
			HostKeyDir:           config.SSHDir(),
			Keys:                 keys,
			Layout:               c.Config.General.Layout,
			NotificationDuration: c.Config.NotificationDuration(),
		}, c.Scheduler, c.URLs)
		if err != nil {
			return fmt.Errorf("failed to create SSH server: %w", err)
		}

		fmt.Printf("SSH dashboard listening on %s\n", sshServer.Address())
		g.Go(sshServer.ListenAndServe)
		g.Go(func() error {
			<-gctx.Done()
			return shutdown("ssh", sshServer.Shutdown)
		})
	}

	if s.HTTPAddr != "" {
		httpServer := server.NewHTTPServer(s.HTTPAddr, server.NewHandler(gctx, c.Scheduler, c.RunHistory))

		fmt.Printf("HTTP status API listening on %s\n", httpServer.Address())
		g.Go(httpServer.ListenAndServe)
		g.Go(func() error {
			<-gctx.Done()
			return shutdown("http", httpServer.Shutdown)
		})
	}

	logging.Logger.Info("Serving dashboard",
		"ssh_addr", s.SSHAddr,
		"http_addr", s.HTTPAddr,
		"interval", c.Config.RefreshInterval().String())

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	logging.Logger.Info("Server stopped")
	return nil
}

func shutdown(name string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logging.Logger.Info("Shutting down", "server", name)
	if err := fn(ctx); err != nil {
		return fmt.Errorf("failed to shut down %s server: %w", name, err)
	}
	return nil
}
