package main

import (
	"context"
	"errors"
	"os"

	"github.com/jadipas/freddie/internal/services"
	"github.com/jadipas/freddie/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	api := services.NewAPIService(config.Backend.BaseURL, nil, config.Backend.RateLimit)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: api,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "freddie",
		Usage:    "Tempo-aware set building for DJs",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
