// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

// GenresTable represents the 'genres' reference table.
type GenresTable struct {
	Table     string
	GenreID   string
	GenreName string
}

// Genres is the schema definition for the genres table.
var Genres = GenresTable{
	Table:     "genres",
	GenreID:   "genre_id",
	GenreName: "genre_name",
}

func (t GenresTable) Columns() []string {
	return []string{t.GenreID, t.GenreName}
}
