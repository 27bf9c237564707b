package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/authors-api/internal/platform/postgres"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/urfave/cli/v3"
)

func migrateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "migrate",
		Usage:     "Run database migrations",
		ArgsUsage: "[" + strings.Join(postgres.MigrationCommands, "|") + "]",
		Action:    r.Migrate,
	}
}

// Migrate runs one goose command against the configured database. The
// command defaults to "up".
func (r *Runner) Migrate(ctx context.Context, cmd *cli.Command) error {
	command := postgres.MigrateUp
	if cmd.Args().Present() {
		command = cmd.Args().First()
	}
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (want one of %s)",
			command, strings.Join(postgres.MigrationCommands, ", "))
	}

	_, log, db, err := r.environment(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", redact.ErrorAttr(err))
		}
	}()

	if err := postgres.RunMigrations(ctx, db, command, log); err != nil {
		return fmt.Errorf("migrate %s failed: %w", command, err)
	}

	newConsole(r.output).Info("Migrations %s completed", command)
	return nil
}
