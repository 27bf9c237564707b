// Command authorsctl provides developer and operator tasks for the authors API:
// bootstrapping a development database and running migrations.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/phrazzld/authors-api/internal/redact"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := NewRunner(RunnerOpts{})

	app := &cli.Command{
		Name:  "authorsctl",
		Usage: "Manage the authors API database and development environment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (default: search for config.yaml)",
			},
		},
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		color.Red("Error: %s\n", redact.Error(err))
		stop()
		os.Exit(1)
	}
}
