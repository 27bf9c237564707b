package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/authors-api/internal/config"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/urfave/cli/v3"
)

// Runner holds the dependencies shared by every command.
type Runner struct {
	output    io.Writer
	logOutput io.Writer
	load      func(path string) (*config.Config, error)
	open      func(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error)
}

// RunnerOpts configures NewRunner. Zero values select the process defaults.
type RunnerOpts struct {
	Output    io.Writer
	LogOutput io.Writer
}

// NewRunner creates a Runner writing console output to opts.Output and
// structured logs to opts.LogOutput.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	return &Runner{
		output:    opts.Output,
		logOutput: opts.LogOutput,
		load:      config.LoadFile,
		open:      postgres.Open,
	}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{devSetupCommand(r), migrateCommand(r)}
}

// environment loads configuration and connects to PostgreSQL. Both commands
// need a real database; the memory driver is rejected.
func (r *Runner) environment(ctx context.Context, cmd *cli.Command) (*config.Config, *slog.Logger, *sql.DB, error) {
	cfg, err := r.load(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(r.logOutput, cfg.Server.LogLevel)

	if cfg.Database.Driver != config.DriverPostgres {
		return nil, nil, nil, fmt.Errorf(
			"%s requires database.driver=%s, got %q",
			cmd.Name, config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := r.open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, log, db, nil
}
