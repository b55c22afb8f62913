// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package analytics

import "context"

// # Analytics Data Access

// Repository defines the read-side data access contract for the catalog.
type Repository interface {

	/*
		SearchOverviews runs a full-text search over movie overviews, ranked
		by relevance.

		Parameters:
		  - ctx: context.Context
		  - query: string (Natural-language phrase)
		  - limit: int

		Returns:
		  - []OverviewMatch: Hits in descending relevance order
		  - error: Query failures
	*/
	SearchOverviews(ctx context.Context, query string, limit int) ([]OverviewMatch, error)

	/*
		SearchTitles searches movie titles by full-text match or substring,
		ranked by relevance then popularity.

		Parameters:
		  - ctx: context.Context
		  - query: string (Title fragment)
		  - limit: int

		Returns:
		  - []TitleMatch: Hits in descending relevance order
		  - error: Query failures
	*/
	SearchTitles(ctx context.Context, query string, limit int) ([]TitleMatch, error)

	/*
		TopGenres aggregates rating and popularity per genre, keeping genres
		with at least minMovies titles.

		Parameters:
		  - ctx: context.Context
		  - minMovies: int (Minimum catalog presence)

		Returns:
		  - []GenreStats: Genres in descending average-rating order
		  - error: Query failures
	*/
	TopGenres(ctx context.Context, minMovies int) ([]GenreStats, error)

	/*
		Collaborators finds actors who shared at least minShared movies with
		the named actor.

		Parameters:
		  - ctx: context.Context
		  - actorName: string (Case-insensitive exact name)
		  - minShared: int

		Returns:
		  - []Collaboration: Co-stars in descending shared-movie order
		  - error: Query failures
	*/
	Collaborators(ctx context.Context, actorName string, minShared int) ([]Collaboration, error)

	/*
		DirectorFilmography lists the named director's films rated at or above
		minRating, with their top-billed cast.

		Parameters:
		  - ctx: context.Context
		  - directorName: string (Case-insensitive exact name)
		  - minRating: float64

		Returns:
		  - []DirectorFilm: Films in descending rating order
		  - error: Query failures
	*/
	DirectorFilmography(ctx context.Context, directorName string, minRating float64) ([]DirectorFilm, error)

	/*
		CatalogSize returns the number of ingested movies, as a cheap probe
		that the catalog has data at all.

		Parameters:
		  - ctx: context.Context

		Returns:
		  - int64: Movie row count
		  - error: Query failures
	*/
	CatalogSize(ctx context.Context) (int64, error)
}
