// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package schema is the statically declared description of the MovieFinder
relational schema: table names, column names, and DDL, all as data.

SQL throughout the codebase is assembled from these constants rather than
string literals, so identifier names never originate anywhere near external
input and a rename touches exactly one file.
*/
package schema

// MoviesTable represents the 'movies' table.
type MoviesTable struct {
	Table            string
	MovieID          string
	Title            string
	Overview         string
	ReleaseDate      string
	Runtime          string
	Budget           string
	Revenue          string
	VoteAverage      string
	VoteCount        string
	Popularity       string
	OriginalLanguage string

	// Stored generated tsvector columns backing the full-text GIN indexes.
	OverviewTSV string
	TitleTSV    string
}

// Movies is the schema definition for the movies table.
var Movies = MoviesTable{
	Table:            "movies",
	MovieID:          "movie_id",
	Title:            "title",
	Overview:         "overview",
	ReleaseDate:      "release_date",
	Runtime:          "runtime",
	Budget:           "budget",
	Revenue:          "revenue",
	VoteAverage:      "vote_average",
	VoteCount:        "vote_count",
	Popularity:       "popularity",
	OriginalLanguage: "original_language",
	OverviewTSV:      "overview_tsv",
	TitleTSV:         "title_tsv",
}

// Columns returns the insertable columns, excluding the generated tsvectors.
func (t MoviesTable) Columns() []string {
	return []string{
		t.MovieID, t.Title, t.Overview, t.ReleaseDate, t.Runtime,
		t.Budget, t.Revenue, t.VoteAverage, t.VoteCount,
		t.Popularity, t.OriginalLanguage,
	}
}
