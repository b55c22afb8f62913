// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

import "fmt"

// TableDDL pairs a table name with its CREATE statement.
type TableDDL struct {
	Name   string
	Create string
}

// IndexDDL pairs an index name with its CREATE statement and a human-readable
// description for provisioning logs.
type IndexDDL struct {
	Name        string
	Create      string
	Description string
}

// Tables returns the CREATE TABLE statements in foreign-key-safe creation
// order: parents before the junction and fact tables that reference them.
//
// Full-text search relies on stored generated tsvector columns so that the
// GIN indexes stay current without triggers.
func Tables() []TableDDL {
	return []TableDDL{
		{
			Name: Movies.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s INT PRIMARY KEY,
				%s TEXT NOT NULL,
				%s TEXT,
				%s DATE,
				%s INT,
				%s BIGINT,
				%s BIGINT,
				%s NUMERIC(3,1),
				%s INT,
				%s NUMERIC(10,3),
				%s VARCHAR(10),
				%s TSVECTOR GENERATED ALWAYS AS (to_tsvector('english', coalesce(%s, ''))) STORED,
				%s TSVECTOR GENERATED ALWAYS AS (to_tsvector('english', coalesce(%s, ''))) STORED
			)`,
				Movies.Table,
				Movies.MovieID,
				Movies.Title,
				Movies.Overview,
				Movies.ReleaseDate,
				Movies.Runtime,
				Movies.Budget,
				Movies.Revenue,
				Movies.VoteAverage,
				Movies.VoteCount,
				Movies.Popularity,
				Movies.OriginalLanguage,
				Movies.OverviewTSV, Movies.Overview,
				Movies.TitleTSV, Movies.Title,
			),
		},
		{
			Name: Genres.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s INT PRIMARY KEY,
				%s VARCHAR(100) NOT NULL
			)`,
				Genres.Table,
				Genres.GenreID,
				Genres.GenreName,
			),
		},
		{
			Name: MovieGenres.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				PRIMARY KEY (%s, %s)
			)`,
				MovieGenres.Table,
				MovieGenres.MovieID, Movies.Table, Movies.MovieID,
				MovieGenres.GenreID, Genres.Table, Genres.GenreID,
				MovieGenres.MovieID, MovieGenres.GenreID,
			),
		},
		{
			Name: People.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s INT PRIMARY KEY,
				%s VARCHAR(255) NOT NULL,
				%s NUMERIC(10,3)
			)`,
				People.Table,
				People.PersonID,
				People.Name,
				People.Popularity,
			),
		},
		{
			Name: MovieCast.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s BIGSERIAL PRIMARY KEY,
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				%s VARCHAR(255),
				%s INT
			)`,
				MovieCast.Table,
				MovieCast.ID,
				MovieCast.MovieID, Movies.Table, Movies.MovieID,
				MovieCast.PersonID, People.Table, People.PersonID,
				MovieCast.CharacterName,
				MovieCast.CastOrder,
			),
		},
		{
			Name: MovieCrew.Table,
			Create: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				%s BIGSERIAL PRIMARY KEY,
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				%s INT REFERENCES %s(%s) ON DELETE CASCADE,
				%s VARCHAR(100),
				%s VARCHAR(100)
			)`,
				MovieCrew.Table,
				MovieCrew.ID,
				MovieCrew.MovieID, Movies.Table, Movies.MovieID,
				MovieCrew.PersonID, People.Table, People.PersonID,
				MovieCrew.Job,
				MovieCrew.Department,
			),
		},
	}
}

// TableNames returns the table names in creation order.
func TableNames() []string {
	tables := Tables()
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.Name)
	}
	return names
}

// DropOrder returns the table names in reverse creation order, so dependents
// are dropped before the tables they reference.
func DropOrder() []string {
	names := TableNames()
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Indexes returns the secondary indexes: two full-text GIN indexes and seven
// B-tree indexes supporting the analytical queries.
//
// The statements intentionally omit IF NOT EXISTS; the provisioner treats the
// "already exists" SQLSTATE as a skip so reruns stay idempotent.
func Indexes() []IndexDDL {
	return []IndexDDL{
		{
			Name:        "idx_movie_overview",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_overview ON %s USING GIN (%s)", Movies.Table, Movies.OverviewTSV),
			Description: "full-text index on movies.overview",
		},
		{
			Name:        "idx_movie_title",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_title ON %s USING GIN (%s)", Movies.Table, Movies.TitleTSV),
			Description: "full-text index on movies.title",
		},
		{
			Name:        "idx_movie_vote_average",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_vote_average ON %s (%s)", Movies.Table, Movies.VoteAverage),
			Description: "index on movies.vote_average",
		},
		{
			Name:        "idx_movie_release_date",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_release_date ON %s (%s)", Movies.Table, Movies.ReleaseDate),
			Description: "index on movies.release_date",
		},
		{
			Name:        "idx_movie_cast_person",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_cast_person ON %s (%s)", MovieCast.Table, MovieCast.PersonID),
			Description: "index on movie_cast.person_id",
		},
		{
			Name:        "idx_movie_cast_order",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_cast_order ON %s (%s)", MovieCast.Table, MovieCast.CastOrder),
			Description: "index on movie_cast.cast_order",
		},
		{
			Name:        "idx_movie_crew_person_job",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_crew_person_job ON %s (%s, %s)", MovieCrew.Table, MovieCrew.PersonID, MovieCrew.Job),
			Description: "composite index on movie_crew(person_id, job)",
		},
		{
			Name:        "idx_movie_genres_genre",
			Create:      fmt.Sprintf("CREATE INDEX idx_movie_genres_genre ON %s (%s)", MovieGenres.Table, MovieGenres.GenreID),
			Description: "index on movie_genres.genre_id",
		},
		{
			Name:        "idx_people_name",
			Create:      fmt.Sprintf("CREATE INDEX idx_people_name ON %s (%s)", People.Table, People.Name),
			Description: "index on people.name",
		},
	}
}
