package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)

	configPath := defaultConfigPath
	if p := os.Getenv("CINEVAULT_CONFIG"); p != "" {
		if _, err := os.Stat(p); err != nil {
			logger.Fatalf("%v: CINEVAULT_CONFIG points to %s", shared.ErrMissingConfig, p)
		}
		configPath = p
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}
	shared.SetLogLevel(logger, config.Log.Level)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "cinevault",
		Usage:    "Browse, buy and keep movies from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			stop()
			os.Exit(130)
		}
		logger.Fatalf("application error: %v", err)
	}
}
