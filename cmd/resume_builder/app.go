package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/assist"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/storage"
	"go.uber.org/zap"
)

// app holds the components shared by the subcommands.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	snaps   *storage.Snapshots
	store   *document.Store
	client  llm.Client

	closers []func()
}

// newApp resolves the configuration, opens the snapshot backend and loads the
// saved document into a store. Call close when done.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: observability.NewMetrics("resume_builder"),
	}
	a.closers = append(a.closers, func() { _ = logger.Sync() })

	backend, err := a.openBackend(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.snaps = storage.NewSnapshots(backend,
		storage.WithLogger(logger),
		storage.WithObserver(a.metrics),
	)
	a.store = document.NewStore(a.snaps.LoadOrEmpty(ctx), document.WithClearer(a.snaps))
	return a, nil
}

func (a *app) openBackend(ctx context.Context) (storage.Backend, error) {
	switch a.cfg.Storage {
	case config.StoragePostgres:
		database, err := db.Connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, database.Close)
		if err := database.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return storage.NewPostgresBackend(database), nil
	case config.StorageS3:
		return storage.NewS3Backend(ctx, storage.S3Options{
			Bucket:          a.cfg.S3Bucket,
			Region:          a.cfg.S3Region,
			Endpoint:        a.cfg.S3Endpoint,
			AccessKeyID:     a.cfg.S3AccessKey,
			SecretAccessKey: a.cfg.S3SecretKey,
		})
	default:
		return storage.NewFileBackend(a.cfg.DataDir), nil
	}
}

// llmClient returns the model client, creating it on first use. It returns
// nil without an error when no API key is configured.
func (a *app) llmClient(ctx context.Context) (llm.Client, error) {
	if a.client != nil || a.cfg.APIKey == "" {
		return a.client, nil
	}

	llmCfg := llm.DefaultConfig().WithTimeout(a.cfg.AITimeoutDuration())
	if a.cfg.Model != "" {
		llmCfg = llmCfg.
			WithModel(llm.TierLite, a.cfg.Model).
			WithModel(llm.TierStandard, a.cfg.Model).
			WithModel(llm.TierAdvanced, a.cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmCfg, a.cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	a.client = llm.NewBreakerClient(client, llm.DefaultBreakerConfig("gemini"), a.logger)
	a.closers = append(a.closers, func() { _ = a.client.Close() })
	return a.client, nil
}

// editor builds the assist editor over the app's store. Without an API key
// the editor is disabled.
func (a *app) editor(ctx context.Context) (*assist.Editor, error) {
	client, err := a.llmClient(ctx)
	if err != nil {
		return nil, err
	}
	var assistant *assist.Assistant
	if client != nil {
		assistant = assist.New(client,
			assist.WithTimeout(a.cfg.AITimeoutDuration()),
			assist.WithLogger(a.logger),
			assist.WithObserver(a.metrics),
		)
	}
	return assist.NewEditor(assistant, a.store, assist.NewBusy(), a.logger), nil
}

// save writes the current document to the snapshot backend.
func (a *app) save(ctx context.Context) error {
	if err := a.snaps.Save(ctx, a.store.Current()); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// errNoAPIKey is returned by commands that need a model.
var errNoAPIKey = errors.New("AI assist requires an API key (set GEMINI_API_KEY or api_key in the config file)")
