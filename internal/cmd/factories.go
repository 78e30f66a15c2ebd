package cmd

import (
	adapterbrowser "github.com/renato0307/prinbox/internal/adapters/browser"
	adaptercredentials "github.com/renato0307/prinbox/internal/adapters/credentials"
	adaptergithub "github.com/renato0307/prinbox/internal/adapters/github"
	adapterstorage "github.com/renato0307/prinbox/internal/adapters/storage"
	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
	"github.com/renato0307/prinbox/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Configuration
	Config      *config.Config
	ConfigError error // Load failure, shown once at startup

	// Adapters
	Credentials ports.CredentialSource
	Opener      ports.URLOpener
	RunHistory  ports.RunReader // nil when the history database could not be opened

	// Services
	Aggregator *services.Aggregator
	Scheduler  *services.Scheduler
	URLs       *services.URLTable

	// Internal - for cleanup only
	runRepo ports.RunRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config, cfgErr error) (*Container, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	// Run history is optional: without it cycles still run, they just aren't recorded
	var (
		recorder ports.RunRecorder
		reader   ports.RunReader
		runRepo  ports.RunRepository
	)
	repo, err := adapterstorage.NewSQLiteRepository(config.DBPath())
	if err != nil {
		logging.Logger.Warn("Run history unavailable", "path", config.DBPath(), "error", err)
	} else {
		recorder, reader, runRepo = repo, repo, repo
	}

	client := adaptergithub.NewClient(nil)
	credentials := adaptercredentials.NewEnvSource()

	identities := services.NewIdentityCache(client)
	fetcher := services.NewAccountFetcher(client, credentials, identities)
	resolver := services.NewCheckStatusResolver(client)
	urls := services.NewURLTable()
	aggregator := services.NewAggregator(
		cfg.DomainAccounts(),
		fetcher,
		resolver,
		urls,
		cfg.General.MaxConcurrency,
	)
	scheduler := services.NewScheduler(aggregator, recorder, cfg.RefreshInterval())

	logging.Logger.Debug("Container wired",
		"accounts", len(cfg.Accounts),
		"run_history", runRepo != nil)

	return &Container{
		Aggregator:  aggregator,
		Config:      cfg,
		ConfigError: cfgErr,
		Credentials: credentials,
		Opener:      adapterbrowser.NewOpener(),
		RunHistory:  reader,
		Scheduler:   scheduler,
		URLs:        urls,
		runRepo:     runRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}
