// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
PostgreSQL implementation of the analytics repository.

The search queries lean on the stored generated tsvector columns and their
GIN indexes; relevance is ts_rank over plainto_tsquery, so user input is
never interpreted as query syntax. All identifiers come from the static
schema declaration and every user value is a bind parameter.
*/
package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaronav/moviefinder/internal/platform/database/schema"
	"github.com/yaronav/moviefinder/internal/platform/dberr"
)

// queryRowCap bounds the name-based queries, which take no limit parameter.
const queryRowCap = 20

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed analytics repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
SearchOverviews matches the query phrase against the overview tsvector and
ranks hits with ts_rank. The snippet is the first 150 characters of the
overview.
*/
func (repository *postgresRepository) SearchOverviews(ctx context.Context, query string, limit int) ([]OverviewMatch, error) {
	sql := fmt.Sprintf(`
		SELECT
			m.%s,
			m.%s,
			EXTRACT(YEAR FROM m.%s)::int AS release_year,
			LEFT(COALESCE(m.%s, ''), 150) AS snippet,
			ts_rank(m.%s, plainto_tsquery('english', $1)) AS relevance
		FROM %s m
		WHERE m.%s @@ plainto_tsquery('english', $1)
		ORDER BY relevance DESC, m.%s DESC NULLS LAST
		LIMIT $2`,
		schema.Movies.Title,
		schema.Movies.VoteAverage,
		schema.Movies.ReleaseDate,
		schema.Movies.Overview,
		schema.Movies.OverviewTSV,
		schema.Movies.Table,
		schema.Movies.OverviewTSV,
		schema.Movies.VoteAverage,
	)

	rows, err := repository.pool.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "search overviews")
	}
	defer rows.Close()

	var matches []OverviewMatch
	for rows.Next() {
		var m OverviewMatch
		if err := rows.Scan(&m.Title, &m.Rating, &m.Year, &m.Snippet, &m.Relevance); err != nil {
			return nil, dberr.Wrap(err, "search overviews")
		}
		matches = append(matches, m)
	}
	return matches, dberr.Wrap(rows.Err(), "search overviews")
}

/*
SearchTitles combines full-text matching on the title tsvector with a
substring fallback, so short fragments like "Star" still hit hyphenated or
compound titles. Full-text hits rank first, ties break on popularity.
*/
func (repository *postgresRepository) SearchTitles(ctx context.Context, query string, limit int) ([]TitleMatch, error) {
	sql := fmt.Sprintf(`
		SELECT
			m.%s,
			m.%s,
			EXTRACT(YEAR FROM m.%s)::int AS release_year,
			m.%s,
			ts_rank(m.%s, plainto_tsquery('english', $1)) AS relevance
		FROM %s m
		WHERE m.%s @@ plainto_tsquery('english', $1)
		   OR m.%s ILIKE '%%' || $1 || '%%'
		ORDER BY relevance DESC, m.%s DESC
		LIMIT $2`,
		schema.Movies.Title,
		schema.Movies.VoteAverage,
		schema.Movies.ReleaseDate,
		schema.Movies.Popularity,
		schema.Movies.TitleTSV,
		schema.Movies.Table,
		schema.Movies.TitleTSV,
		schema.Movies.Title,
		schema.Movies.Popularity,
	)

	rows, err := repository.pool.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "search titles")
	}
	defer rows.Close()

	var matches []TitleMatch
	for rows.Next() {
		var m TitleMatch
		if err := rows.Scan(&m.Title, &m.Rating, &m.Year, &m.Popularity, &m.Relevance); err != nil {
			return nil, dberr.Wrap(err, "search titles")
		}
		matches = append(matches, m)
	}
	return matches, dberr.Wrap(rows.Err(), "search titles")
}

/*
TopGenres aggregates per-genre rating and revenue over the junction table.
Unrated movies are excluded so they cannot drag an average down, and genres
below the minimum catalog presence are dropped so tiny samples do not
distort the ranking.
*/
func (repository *postgresRepository) TopGenres(ctx context.Context, minMovies int) ([]GenreStats, error) {
	sql := fmt.Sprintf(`
		SELECT
			g.%s,
			ROUND(AVG(m.%s), 2)::float8 AS avg_rating,
			COUNT(DISTINCT m.%s) AS movie_count,
			COALESCE(SUM(m.%s), 0) AS total_revenue,
			COALESCE(ROUND(AVG(m.%s), 0), 0)::bigint AS avg_revenue
		FROM %s g
		JOIN %s mg ON mg.%s = g.%s
		JOIN %s m ON m.%s = mg.%s
		WHERE m.%s IS NOT NULL
		GROUP BY g.%s, g.%s
		HAVING COUNT(DISTINCT m.%s) >= $1
		ORDER BY avg_rating DESC, movie_count DESC`,
		schema.Genres.GenreName,
		schema.Movies.VoteAverage,
		schema.Movies.MovieID,
		schema.Movies.Revenue,
		schema.Movies.Revenue,
		schema.Genres.Table,
		schema.MovieGenres.Table, schema.MovieGenres.GenreID, schema.Genres.GenreID,
		schema.Movies.Table, schema.Movies.MovieID, schema.MovieGenres.MovieID,
		schema.Movies.VoteAverage,
		schema.Genres.GenreID, schema.Genres.GenreName,
		schema.Movies.MovieID,
	)

	rows, err := repository.pool.Query(ctx, sql, minMovies)
	if err != nil {
		return nil, dberr.Wrap(err, "genre statistics")
	}
	defer rows.Close()

	var stats []GenreStats
	for rows.Next() {
		var s GenreStats
		if err := rows.Scan(&s.Genre, &s.AvgRating, &s.MovieCount, &s.TotalRevenue, &s.AvgRevenue); err != nil {
			return nil, dberr.Wrap(err, "genre statistics")
		}
		stats = append(stats, s)
	}
	return stats, dberr.Wrap(rows.Err(), "genre statistics")
}

/*
Collaborators walks the cast fact table twice: once to find the movies the
named actor appears in, once to find everyone else billed in them. The name
is matched as a case-insensitive substring, so "Hanks" finds Tom Hanks.
DISTINCT inside the CTE absorbs the duplicate credit rows a re-ingested
catalog carries, leaving one row per (collaborator, movie), so the title
aggregate can order by rating without re-introducing duplicates.
*/
func (repository *postgresRepository) Collaborators(ctx context.Context, actorName string, minShared int) ([]Collaboration, error) {
	sql := collaboratorsSQL()

	rows, err := repository.pool.Query(ctx, sql, actorName, minShared)
	if err != nil {
		return nil, dberr.Wrap(err, "actor collaborations")
	}
	defer rows.Close()

	var collaborations []Collaboration
	for rows.Next() {
		var c Collaboration
		if err := rows.Scan(&c.Name, &c.SharedMovies, &c.Titles); err != nil {
			return nil, dberr.Wrap(err, "actor collaborations")
		}
		collaborations = append(collaborations, c)
	}
	return collaborations, dberr.Wrap(rows.Err(), "actor collaborations")
}

// collaboratorsSQL builds the collaborator query text. Split out so the
// title aggregate's rating order can be verified without a database.
func collaboratorsSQL() string {
	return fmt.Sprintf(`
		WITH shared AS (
			SELECT DISTINCT c2.%s AS person_id, c1.%s AS movie_id
			FROM %s p1
			JOIN %s c1 ON c1.%s = p1.%s
			JOIN %s c2 ON c2.%s = c1.%s AND c2.%s <> p1.%s
			WHERE p1.%s ILIKE '%%' || $1 || '%%'
		)
		SELECT
			p.%s,
			COUNT(DISTINCT s.movie_id) AS shared_movies,
			string_agg(m.%s, ', ' ORDER BY m.%s DESC NULLS LAST) AS titles
		FROM shared s
		JOIN %s p ON p.%s = s.person_id
		JOIN %s m ON m.%s = s.movie_id
		GROUP BY p.%s, p.%s
		HAVING COUNT(DISTINCT s.movie_id) >= $2
		ORDER BY shared_movies DESC, p.%s
		LIMIT %d`,
		schema.MovieCast.PersonID, schema.MovieCast.MovieID,
		schema.People.Table,
		schema.MovieCast.Table, schema.MovieCast.PersonID, schema.People.PersonID,
		schema.MovieCast.Table, schema.MovieCast.MovieID, schema.MovieCast.MovieID,
		schema.MovieCast.PersonID, schema.People.PersonID,
		schema.People.Name,
		schema.People.Name,
		schema.Movies.Title, schema.Movies.VoteAverage,
		schema.People.Table, schema.People.PersonID,
		schema.Movies.Table, schema.Movies.MovieID,
		schema.People.PersonID, schema.People.Name,
		schema.People.Name,
		queryRowCap,
	)
}

/*
DirectorFilmography joins films through the crew fact table on the Director
role, matching the name as a case-insensitive substring. Grouping by the
movie primary key collapses the duplicate crew rows a re-ingested catalog
carries; the top-billed cast comes from a correlated aggregate ordered by
billing position.
*/
func (repository *postgresRepository) DirectorFilmography(ctx context.Context, directorName string, minRating float64) ([]DirectorFilm, error) {
	sql := fmt.Sprintf(`
		SELECT
			m.%s,
			m.%s::float8 AS rating,
			EXTRACT(YEAR FROM m.%s)::int AS release_year,
			COALESCE(m.%s, 0) AS revenue,
			(
				SELECT string_agg(cp.%s, ', ' ORDER BY mc.%s)
				FROM %s mc
				JOIN %s cp ON cp.%s = mc.%s
				WHERE mc.%s = m.%s AND mc.%s < 3
			) AS top_cast
		FROM %s m
		JOIN %s cr ON cr.%s = m.%s AND cr.%s = 'Director'
		JOIN %s d ON d.%s = cr.%s
		WHERE d.%s ILIKE '%%' || $1 || '%%' AND m.%s >= $2
		GROUP BY m.%s
		ORDER BY m.%s DESC, m.%s DESC
		LIMIT %d`,
		schema.Movies.Title,
		schema.Movies.VoteAverage,
		schema.Movies.ReleaseDate,
		schema.Movies.Revenue,
		schema.People.Name, schema.MovieCast.CastOrder,
		schema.MovieCast.Table,
		schema.People.Table, schema.People.PersonID, schema.MovieCast.PersonID,
		schema.MovieCast.MovieID, schema.Movies.MovieID, schema.MovieCast.CastOrder,
		schema.Movies.Table,
		schema.MovieCrew.Table, schema.MovieCrew.MovieID, schema.Movies.MovieID, schema.MovieCrew.Job,
		schema.People.Table, schema.People.PersonID, schema.MovieCrew.PersonID,
		schema.People.Name, schema.Movies.VoteAverage,
		schema.Movies.MovieID,
		schema.Movies.VoteAverage, schema.Movies.Popularity,
		queryRowCap,
	)

	rows, err := repository.pool.Query(ctx, sql, directorName, minRating)
	if err != nil {
		return nil, dberr.Wrap(err, "director filmography")
	}
	defer rows.Close()

	var films []DirectorFilm
	for rows.Next() {
		var f DirectorFilm
		if err := rows.Scan(&f.Title, &f.Rating, &f.Year, &f.Revenue, &f.TopCast); err != nil {
			return nil, dberr.Wrap(err, "director filmography")
		}
		films = append(films, f)
	}
	return films, dberr.Wrap(rows.Err(), "director filmography")
}

// CatalogSize returns the number of ingested movies.
func (repository *postgresRepository) CatalogSize(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.Movies.Table)

	var count int64
	if err := repository.pool.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "catalog size")
	}
	return count, nil
}
