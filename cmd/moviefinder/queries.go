// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/yaronav/moviefinder/internal/analytics"
	"github.com/yaronav/moviefinder/pkg/format"
)

func queriesCommand() *cli.Command {
	return &cli.Command{
		Name:   "queries",
		Usage:  "Run the analytical query demonstrations against the catalog",
		Action: runQueries,
	}
}

const displayCap = 10

func runQueries(ctx context.Context, _ *cli.Command) error {
	logger := newLogger()

	_, pool, err := openPool(ctx, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	service := analytics.NewService(analytics.NewRepository(pool), logger)

	size := service.CatalogSize(ctx)
	if size == 0 {
		return fmt.Errorf("the catalog is empty; run 'moviefinder ingest' first")
	}
	fmt.Printf("catalog holds %d movies\n", size)

	demoOverviewSearch(ctx, service)
	demoTitleSearch(ctx, service)
	demoGenreStats(ctx, service)
	demoCollaborations(ctx, service)
	demoFilmographies(ctx, service)

	banner("All query demonstrations completed")
	return nil
}

func banner(title string) {
	line := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n  %s\n%s\n", line, title, line)
}

func demoOverviewSearch(ctx context.Context, service *analytics.Service) {
	banner("Full-text search by movie overview")

	for _, keywords := range []string{"space exploration", "time travel", "artificial intelligence"} {
		fmt.Printf("\nmovies about %q:\n", keywords)

		matches := service.SearchOverviews(ctx, keywords, 0)
		if len(matches) == 0 {
			fmt.Println("  no movies found")
			continue
		}
		for i, m := range matches {
			if i == displayCap {
				break
			}
			fmt.Printf("%2d. %s (%s)\n", i+1, m.Title, yearString(m.Year))
			fmt.Printf("    rating: %s | relevance: %.2f\n", ratingString(m.Rating), m.Relevance)
			fmt.Printf("    %s...\n", m.Snippet)
		}
	}
}

func demoTitleSearch(ctx context.Context, service *analytics.Service) {
	banner("Full-text search by movie title")

	for _, term := range []string{"Star", "Dark", "Spider"} {
		fmt.Printf("\ntitles matching %q:\n", term)

		matches := service.SearchTitles(ctx, term, 0)
		if len(matches) == 0 {
			fmt.Println("  no movies found")
			continue
		}
		for i, m := range matches {
			if i == displayCap {
				break
			}
			fmt.Printf("%2d. %s (%s) - rating: %s, popularity: %.1f\n",
				i+1, m.Title, yearString(m.Year), ratingString(m.Rating), m.Popularity)
		}
	}
}

func demoGenreStats(ctx context.Context, service *analytics.Service) {
	banner("Top-rated genres with revenue analysis")

	for _, minMovies := range []int{20, 50, 10} {
		fmt.Printf("\ngenres with %d+ movies:\n", minMovies)

		stats := service.TopGenres(ctx, minMovies)
		if len(stats) == 0 {
			fmt.Println("  no genres meet the threshold")
			continue
		}
		fmt.Printf("%-20s %-12s %-8s %-18s %s\n", "genre", "avg rating", "movies", "total revenue", "avg revenue")
		for _, s := range stats {
			fmt.Printf("%-20s %-12.2f %-8d %-18s %s\n",
				s.Genre, s.AvgRating, s.MovieCount,
				format.Currency(s.TotalRevenue), format.Currency(s.AvgRevenue))
		}
	}
}

func demoCollaborations(ctx context.Context, service *analytics.Service) {
	banner("Actor collaboration finder")

	for _, actor := range []string{"Tom Hanks", "Leonardo DiCaprio", "Samuel L. Jackson"} {
		fmt.Printf("\nactors who worked with %q in 2+ movies:\n", actor)

		collaborations := service.Collaborators(ctx, actor, 2)
		if len(collaborations) == 0 {
			fmt.Println("  no frequent collaborators found")
			continue
		}
		for i, c := range collaborations {
			if i == displayCap {
				break
			}
			fmt.Printf("%2d. %s - %d shared movies\n", i+1, c.Name, c.SharedMovies)
			fmt.Printf("    %s\n", truncateList(c.Titles, 3))
		}
	}
}

func demoFilmographies(ctx context.Context, service *analytics.Service) {
	banner("Directors' highest-rated films with cast")

	cases := []struct {
		director  string
		minRating float64
	}{
		{"Christopher Nolan", 7.0},
		{"Steven Spielberg", 7.5},
		{"Quentin Tarantino", 7.0},
	}

	for _, tc := range cases {
		fmt.Printf("\nbest films by %q (rating >= %.1f):\n", tc.director, tc.minRating)

		films := service.DirectorFilmography(ctx, tc.director, tc.minRating)
		if len(films) == 0 {
			fmt.Println("  no films meet the threshold")
			continue
		}
		for i, f := range films {
			if i == displayCap {
				break
			}
			fmt.Printf("%2d. %s (%s)\n", i+1, f.Title, yearString(f.Year))
			fmt.Printf("    rating: %.1f/10 | revenue: %s\n", f.Rating, format.Currency(f.Revenue))
			if f.TopCast != nil {
				fmt.Printf("    starring: %s\n", *f.TopCast)
			}
		}
	}
}

// # Presentation helpers

func yearString(year *int) string {
	if year == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *year)
}

func ratingString(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", *rating)
}

// truncateList shortens a comma-separated list to at most n entries.
func truncateList(list string, n int) string {
	parts := strings.Split(list, ", ")
	if len(parts) <= n {
		return list
	}
	return strings.Join(parts[:n], ", ") + fmt.Sprintf(" (+%d more)", len(parts)-n)
}
