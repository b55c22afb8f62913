// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/yaronav/moviefinder/internal/platform/config"
	"github.com/yaronav/moviefinder/internal/tmdb"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Verify catalog API access without touching the database",
		Action: runCheck,
	}
}

// runCheck exercises all three catalog endpoints with the configured key:
// genre list, one discovery page, and one movie detail with credits.
func runCheck(ctx context.Context, _ *cli.Command) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateCatalog(); err != nil {
		return err
	}
	client := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, logger)

	genres, err := client.ListGenres(ctx)
	if err != nil {
		return fmt.Errorf("genre list: %w", err)
	}
	fmt.Printf("genre list ok: %d genres\n", len(genres))

	page, err := client.DiscoverPage(ctx, 1)
	if err != nil {
		return fmt.Errorf("discovery: %w", err)
	}
	fmt.Printf("discovery ok: %d movies on page 1, %d pages total\n",
		len(page.Results), page.TotalPages)

	if len(page.Results) == 0 {
		return fmt.Errorf("discovery returned an empty first page")
	}

	detail, err := client.MovieDetail(ctx, page.Results[0].ID)
	if err != nil {
		return fmt.Errorf("movie detail: %w", err)
	}
	fmt.Printf("detail ok: %q", detail.TitleValue())
	if detail.Credits != nil {
		fmt.Printf(" with %d cast and %d crew entries",
			len(detail.Credits.Cast), len(detail.Credits.Crew))
	}
	fmt.Println()

	fmt.Println("\nAPI access looks good; run 'moviefinder provision' next.")
	return nil
}
