package main

import (
	"context"

	"github.com/phrazzld/authors-api/internal/devsetup"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/urfave/cli/v3"
)

func devSetupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "dev:setup",
		Usage:  "Rebuild the database and create a development user with a personal access token",
		Action: r.DevSetup,
	}
}

// DevSetup drops and re-applies every migration, seeds sample authors, and
// prints a token for a fresh development user.
func (r *Runner) DevSetup(ctx context.Context, cmd *cli.Command) error {
	cfg, log, db, err := r.environment(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", redact.ErrorAttr(err))
		}
	}()

	b, err := devsetup.NewPostgres(cfg, db, newConsole(r.output), log)
	if err != nil {
		return err
	}
	_, err = b.Run(logger.WithLogger(ctx, log))
	return err
}
