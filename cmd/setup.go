package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/cinevault/internal/repositories"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a config file when none exists, then opens the configured backend so migrations run.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}
	r.config = config

	r.logger.Info("initializing slot storage", "backend", config.Storage.Backend)

	store, err := repositories.Open(ctx, config, r.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	if cmd.Bool("rollback") {
		db := repositories.DB(store)
		if db == nil {
			return fmt.Errorf("%w: rollback requires the sqlite backend", shared.ErrInvalidArgument)
		}
		if err := shared.RollbackMigration(db); err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}
		return r.writePlain("✓ Rolled back the latest migration in %s\n", config.Storage.Path)
	}

	switch config.Storage.Backend {
	case shared.BackendSQLite:
		r.writePlain("✓ Storage ready: %s\n", config.Storage.Path)
	case shared.BackendRedis:
		r.writePlain("✓ Storage ready: redis %s (prefix %q)\n", config.Redis.Addr, config.Redis.Prefix)
	default:
		r.writePlain("✓ Storage ready: %s (nothing persists between runs)\n", config.Storage.Backend)
	}

	if lister, ok := store.(interface {
		Keys(context.Context) ([]string, error)
	}); ok {
		keys, err := lister.Keys(ctx)
		if err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}
		if len(keys) > 0 {
			r.writePlain("Existing slots: %s\n", strings.Join(keys, ", "))
		}
	}
	return nil
}
