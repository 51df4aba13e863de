// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/anhminh10a2hoa/webshop/cmd/app/commands"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "webshop",
		Usage:   "Web shop REST API",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "reset-db",
				Usage: "Drop all collections and load the seed fixtures",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "seed-dir",
						Aliases: []string{"s"},
						Value:   "./setup",
						Usage:   "Directory containing users.json and products.json fixtures",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunResetDB(ctx, cmd.String("seed-dir"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
