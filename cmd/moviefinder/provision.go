// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/yaronav/moviefinder/internal/movie"
	"github.com/yaronav/moviefinder/internal/provision"
)

func provisionCommand() *cli.Command {
	return &cli.Command{
		Name:  "provision",
		Usage: "Create the catalog schema (tables and indexes)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "drop all catalog tables first (destroys all data)",
			},
		},
		Action: runProvision,
	}
}

func runProvision(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger()

	_, pool, err := openPool(ctx, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	summary, err := provision.NewProvisioner(pool, logger).Run(ctx, cmd.Bool("reset"))
	if err != nil {
		return err
	}

	fmt.Printf("schema ready: %d tables, %d indexes created, %d skipped\n",
		summary.TablesCreated, summary.IndexesCreated, summary.IndexesSkipped)

	counts, err := movie.NewStore(pool).TableCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nrow counts:")
	for _, count := range counts {
		fmt.Printf("  %-14s %d\n", count.Table, count.Rows)
	}
	return nil
}
