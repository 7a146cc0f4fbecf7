package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"phonicsboard/internal/config"
	"phonicsboard/internal/kvstore"
	"phonicsboard/internal/logging"
	"phonicsboard/internal/settings"
)

// env is the loaded configuration plus the settings store, shared by every
// subcommand.
type env struct {
	cfg      *config.Config
	store    kvstore.Store
	settings *settings.Manager
	logger   *slog.Logger

	closers []io.Closer
}

// openEnv loads the config, starts logging and opens the variant's
// settings. Callers must Close the env.
func openEnv(ctx context.Context, flags *globalFlags, variant settings.Variant) (*env, error) {
	path := flags.config
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.db != "" {
		cfg.Database = flags.db
	}
	if flags.assets != "" {
		cfg.Assets = flags.assets
	}

	e := &env{cfg: cfg}
	logFile, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	e.closers = append(e.closers, logFile)
	e.logger = logging.Component("phonics")

	switch {
	case flags.ephemeral:
		e.store = kvstore.NewMemory()
	case cfg.Store == config.StoreFiles:
		e.store = kvstore.NewDir(cfg.SettingsDir)
	case cfg.Store == config.StoreSQLite:
		db, err := kvstore.OpenSQLite(ctx, cfg.Database)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.store = db
		// Close the database before the log file.
		e.closers = append([]io.Closer{db}, e.closers...)
	default:
		e.Close()
		return nil, fmt.Errorf("unknown settings store %q (want %s or %s)", cfg.Store, config.StoreSQLite, config.StoreFiles)
	}

	e.settings = settings.NewManager(e.store, variant, logging.Component("settings"))
	if _, err := e.settings.Load(ctx); err != nil {
		e.Close()
		return nil, err
	}
	e.logger.Info("environment ready",
		"variant", variant.String(),
		"config", path,
		"store", cfg.Store,
		"database", cfg.Database,
		"ephemeral", flags.ephemeral)
	return e, nil
}

// Close releases everything openEnv opened.
func (e *env) Close() error {
	var errs []error
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
