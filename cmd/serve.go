package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jadipas/freddie/internal/repositories"
	"github.com/jadipas/freddie/internal/server"
	"github.com/jadipas/freddie/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Serve runs the metadata backend: catalog document, upload, and health endpoints.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	if configPath := cmd.String("config"); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			loaded, err := shared.LoadConfig(configPath)
			if err != nil {
				return err
			}
			config = loaded
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	store := repositories.NewCatalogRepository(db)
	handler := server.NewCatalogHandler(store, config.Backend.MetadataPath, r.logger)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.Backend.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.Backend.RateLimit), int(config.Backend.RateLimit)+1)
	}

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger), server.RateLimit(limiter))
	router.Handler(handler)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	r.logger.Info("metadata backend listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
