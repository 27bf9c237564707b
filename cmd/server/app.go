package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/devsetup"
	"github.com/phrazzld/authors-api/internal/platform/memory"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/phrazzld/authors-api/internal/service/auth"
	"github.com/phrazzld/authors-api/internal/store"
)

// application holds the shared dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is configured.
	db *sql.DB

	authors store.AuthorStore
	users   store.UserStore
	clients store.ClientStore

	tokens auth.TokenService
}

// newApplication opens the configured store backend and builds the services
// on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("Database connection established")

		app.db = db
		app.authors = postgres.NewPostgresAuthorStore(db)
		app.users = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost)
		app.clients = postgres.NewPostgresClientStore(db)

	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart")

		app.authors = memory.NewAuthorStore()
		app.users = memory.NewUserStore(cfg.Auth.BCryptCost)
		app.clients = memory.NewClientStore(app.users)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	tokens, err := auth.NewTokenService(cfg.Auth, app.clients)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokens = tokens
	logger.Info("Token service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	// The memory driver starts empty, so it gets the development user and a
	// token the same way dev:setup provides them for PostgreSQL.
	if cfg.Database.Driver == config.DriverMemory {
		b := devsetup.NewMemory(cfg.Dev, app.authors, app.users, app.clients, app.tokens,
			devsetup.NewLogReporter(logger), logger)
		if _, err := b.Run(ctx); err != nil {
			return nil, fmt.Errorf("failed to bootstrap in-memory store: %w", err)
		}
	}

	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", redact.ErrorAttr(err))
		}
		app.db = nil
	}
}
