// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/yaronav/moviefinder/internal/ingest"
	"github.com/yaronav/moviefinder/internal/movie"
	"github.com/yaronav/moviefinder/internal/tmdb"
)

const defaultPages = 25

func ingestCommand() *cli.Command {
	return &cli.Command{
		Name:  "ingest",
		Usage: "Ingest popular movies with credits into the catalog",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "pages",
				Usage: "number of discovery pages to ingest (20 movies per page)",
				Value: defaultPages,
			},
		},
		Action: runIngest,
	}
}

func runIngest(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger()

	cfg, pool, err := openPool(ctx, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := cfg.ValidateCatalog(); err != nil {
		return err
	}
	catalog := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, logger)
	pipeline := ingest.NewPipeline(catalog, movie.NewStore(pool), logger)

	pages := int(cmd.Int("pages"))
	started := time.Now()

	report, err := pipeline.Run(ctx, pages)
	if err != nil {
		return err
	}

	elapsed := time.Since(started).Round(time.Second)
	fmt.Printf("\ningestion finished in %s\n", elapsed)
	fmt.Printf("  attempted: %d\n", report.Attempted)
	fmt.Printf("  ingested:  %d\n", report.Ingested)
	fmt.Printf("  failed:    %d\n", report.Failed)

	if len(report.Tables) > 0 {
		fmt.Println("\nrow counts:")
		for _, count := range report.Tables {
			fmt.Printf("  %-14s %d\n", count.Table, count.Rows)
		}
	}
	return nil
}
