// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
MovieFinder is a movie catalog ETL and analytics tool.

It provisions a PostgreSQL schema, ingests popular movies with credits from
The Movie Database API, and answers analytical questions over the result:

	moviefinder provision [--reset]
	moviefinder ingest [--pages N]
	moviefinder queries
	moviefinder check

Configuration comes from the environment (see internal/platform/config); a
.env file in the working directory is honored.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v3"

	"github.com/yaronav/moviefinder/internal/platform/config"
	"github.com/yaronav/moviefinder/internal/platform/postgres"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "moviefinder",
		Version: version,
		Usage:   "Movie catalog ETL and analytics",
		Commands: []*cli.Command{
			provisionCommand(),
			ingestCommand(),
			queriesCommand(),
			checkCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// openPool loads configuration and connects to PostgreSQL. The pool is
// pinged during construction, so a returned pool is known reachable.
func openPool(ctx context.Context, logger *slog.Logger) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.DSN(), logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}
