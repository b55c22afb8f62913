// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package movie

import "context"

// # Catalog Data Access

// Store defines the write-side data access contract for the catalog.
//
// All writes are idempotent per entity except the credit appends; see
// [Store.AddCastCredits].
type Store interface {

	/*
		UpsertGenres inserts or refreshes the genre reference rows.

		Re-ingestion overwrites the name, so an upstream rename wins on the
		next run.

		Parameters:
		  - ctx: context.Context
		  - genres: []Genre (Upstream reference list)

		Returns:
		  - error: Storage or constraint failures
	*/
	UpsertGenres(ctx context.Context, genres []Genre) error

	/*
		UpsertMovie inserts a movie or refreshes its volatile fields.

		On conflict only title, overview, vote_average, vote_count and
		popularity are updated; the stable fields keep their first-seen values.

		Parameters:
		  - ctx: context.Context
		  - m: *Movie

		Returns:
		  - error: Storage or constraint failures
	*/
	UpsertMovie(ctx context.Context, m *Movie) error

	/*
		UpsertMovieGenres links a movie to its genres, ignoring links that
		already exist.

		Parameters:
		  - ctx: context.Context
		  - movieID: int
		  - genreIDs: []int

		Returns:
		  - error: Storage or foreign-key failures
	*/
	UpsertMovieGenres(ctx context.Context, movieID int, genreIDs []int) error

	/*
		AddCastCredits upserts the people and appends their acting credits in
		one transaction.

		Credit rows are keyed by a surrogate id with no natural-key constraint,
		so re-running ingestion appends duplicate credits. The person rows
		themselves stay idempotent.

		Parameters:
		  - ctx: context.Context
		  - movieID: int
		  - credits: []CastCredit

		Returns:
		  - error: Transaction or constraint failures
	*/
	AddCastCredits(ctx context.Context, movieID int, credits []CastCredit) error

	/*
		AddCrewCredits upserts the people and appends their production credits
		in one transaction. Same append-only caveat as [Store.AddCastCredits].

		Parameters:
		  - ctx: context.Context
		  - movieID: int
		  - credits: []CrewCredit

		Returns:
		  - error: Transaction or constraint failures
	*/
	AddCrewCredits(ctx context.Context, movieID int, credits []CrewCredit) error

	/*
		TableCounts returns the row count of every catalog table, in schema
		creation order.

		Parameters:
		  - ctx: context.Context

		Returns:
		  - []TableCount: One entry per table
		  - error: Query failures
	*/
	TableCounts(ctx context.Context) ([]TableCount, error)
}
