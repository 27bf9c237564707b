// Package main implements the entry point for the authors API server,
// which serves the JSON:API authors resource behind bearer authentication.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/redact"
)

func main() {
	configFile := flag.String("config", "", "Path to a config file (default: search for config.yaml)")
	migrate := flag.Bool("migrate", false, "Apply pending database migrations before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFile, *migrate); err != nil {
		slog.Error("Server exited with error", redact.ErrorAttr(err))
		os.Exit(1)
	}
}

// run wires the application and blocks until ctx is cancelled or the server fails.
func run(ctx context.Context, configFile string, migrate bool) error {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if migrate {
		if app.db == nil {
			return fmt.Errorf("-migrate requires database.driver=%s", config.DriverPostgres)
		}
		if err := postgres.RunMigrations(ctx, app.db, postgres.MigrateUp, l); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return app.Run(ctx)
}
