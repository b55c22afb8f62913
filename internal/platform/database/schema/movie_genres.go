// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

// MovieGenresTable represents the 'movie_genres' junction table.
type MovieGenresTable struct {
	Table   string
	MovieID string
	GenreID string
}

// MovieGenres is the schema definition for the movie_genres table.
var MovieGenres = MovieGenresTable{
	Table:   "movie_genres",
	MovieID: "movie_id",
	GenreID: "genre_id",
}

func (t MovieGenresTable) Columns() []string {
	return []string{t.MovieID, t.GenreID}
}
