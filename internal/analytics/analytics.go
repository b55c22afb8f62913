// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package analytics answers read-side questions about the ingested catalog:
full-text discovery over overviews and titles, genre-level statistics,
actor collaboration networks, and director filmographies.

Results carry nullable catalog fields as pointers; a movie without a release
date or rating still appears, sorted last.
*/
package analytics

// OverviewMatch is one hit of the overview full-text search.
type OverviewMatch struct {
	Title     string
	Rating    *float64
	Year      *int
	Snippet   string
	Relevance float64
}

// TitleMatch is one hit of the title search.
type TitleMatch struct {
	Title      string
	Rating     *float64
	Year       *int
	Popularity float64
	Relevance  float64
}

// GenreStats is the aggregate rating and revenue profile of one genre.
// Unrated movies are excluded from the aggregation, so AvgRating is never
// null.
type GenreStats struct {
	Genre        string
	AvgRating    float64
	MovieCount   int
	TotalRevenue int64
	AvgRevenue   int64
}

// Collaboration is one co-star of the queried actor.
type Collaboration struct {
	Name         string
	SharedMovies int
	// Titles lists the shared movies, comma separated, highest rated first.
	Titles string
}

// DirectorFilm is one film in a director's filmography. The rating is
// non-null because the query filters on a minimum rating.
type DirectorFilm struct {
	Title   string
	Rating  float64
	Year    *int
	Revenue int64
	// TopCast lists the top-billed actors in billing order, comma separated;
	// nil when the film has no stored cast.
	TopCast *string
}
