// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

// MovieCrewTable represents the 'movie_crew' fact table.
type MovieCrewTable struct {
	Table      string
	ID         string
	MovieID    string
	PersonID   string
	Job        string
	Department string
}

// MovieCrew is the schema definition for the movie_crew table.
var MovieCrew = MovieCrewTable{
	Table:      "movie_crew",
	ID:         "id",
	MovieID:    "movie_id",
	PersonID:   "person_id",
	Job:        "job",
	Department: "department",
}

// Columns returns the insertable columns, excluding the surrogate key.
func (t MovieCrewTable) Columns() []string {
	return []string{t.MovieID, t.PersonID, t.Job, t.Department}
}
