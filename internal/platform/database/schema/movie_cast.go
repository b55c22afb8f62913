// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

// MovieCastTable represents the 'movie_cast' fact table.
//
// Rows are keyed by a surrogate id with no natural-key uniqueness, so repeated
// ingestion appends rather than upserts. That asymmetry is deliberate and
// documented; see the ingestion pipeline.
type MovieCastTable struct {
	Table         string
	ID            string
	MovieID       string
	PersonID      string
	CharacterName string
	CastOrder     string
}

// MovieCast is the schema definition for the movie_cast table.
var MovieCast = MovieCastTable{
	Table:         "movie_cast",
	ID:            "id",
	MovieID:       "movie_id",
	PersonID:      "person_id",
	CharacterName: "character_name",
	CastOrder:     "cast_order",
}

// Columns returns the insertable columns, excluding the surrogate key.
func (t MovieCastTable) Columns() []string {
	return []string{t.MovieID, t.PersonID, t.CharacterName, t.CastOrder}
}
