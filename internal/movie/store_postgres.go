// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaronav/moviefinder/internal/platform/database/schema"
	"github.com/yaronav/moviefinder/internal/platform/dberr"
)

// # PostgreSQL Store

// postgresStore implements the [Store] interface using pgx.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed catalog store.
func NewStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

/*
UpsertGenres inserts or refreshes the genre reference rows in one
transaction. The upstream name always wins on conflict.
*/
func (store *postgresStore) UpsertGenres(ctx context.Context, genres []Genre) error {
	if len(genres) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s`,
		schema.Genres.Table,
		schema.Genres.GenreID,
		schema.Genres.GenreName,
		schema.Genres.GenreID,
		schema.Genres.GenreName, schema.Genres.GenreName,
	)

	batch := &pgx.Batch{}
	for _, genre := range genres {
		batch.Queue(query, genre.ID, genre.Name)
	}

	err := pgx.BeginFunc(ctx, store.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	return dberr.Wrap(err, "upsert genres")
}

/*
UpsertMovie inserts a movie or refreshes its volatile fields. Stable fields
(release date, runtime, budget, revenue, original language) keep their
first-seen values on conflict.
*/
func (store *postgresStore) UpsertMovie(ctx context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		schema.Movies.Table,
		strings.Join(schema.Movies.Columns(), ", "),
		schema.Movies.MovieID,
		schema.Movies.Title, schema.Movies.Title,
		schema.Movies.Overview, schema.Movies.Overview,
		schema.Movies.VoteAverage, schema.Movies.VoteAverage,
		schema.Movies.VoteCount, schema.Movies.VoteCount,
		schema.Movies.Popularity, schema.Movies.Popularity,
	)

	_, err := store.pool.Exec(ctx, query,
		m.ID, m.Title, m.Overview, m.ReleaseDate, m.Runtime,
		m.Budget, m.Revenue, m.VoteAverage, m.VoteCount,
		m.Popularity, m.OriginalLanguage,
	)
	return dberr.Wrap(err, fmt.Sprintf("upsert movie %d", m.ID))
}

/*
UpsertMovieGenres links a movie to its genres. Existing links are left
untouched, so the junction table stays duplicate-free across re-runs.
*/
func (store *postgresStore) UpsertMovieGenres(ctx context.Context, movieID int, genreIDs []int) error {
	if len(genreIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		schema.MovieGenres.Table,
		schema.MovieGenres.MovieID,
		schema.MovieGenres.GenreID,
	)

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(query, movieID, genreID)
	}

	err := pgx.BeginFunc(ctx, store.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	return dberr.Wrap(err, fmt.Sprintf("link genres for movie %d", movieID))
}

/*
AddCastCredits upserts the people and appends their acting credits in one
transaction, so a failed write leaves no half-recorded movie.
*/
func (store *postgresStore) AddCastCredits(ctx context.Context, movieID int, credits []CastCredit) error {
	if len(credits) == 0 {
		return nil
	}

	creditQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4)`,
		schema.MovieCast.Table,
		strings.Join(schema.MovieCast.Columns(), ", "),
	)

	err := pgx.BeginFunc(ctx, store.pool, func(tx pgx.Tx) error {
		for _, credit := range credits {
			if err := upsertPerson(ctx, tx, credit.Person); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, creditQuery,
				movieID, credit.Person.ID, credit.Character, credit.Order)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, fmt.Sprintf("add cast credits for movie %d", movieID))
}

/*
AddCrewCredits upserts the people and appends their production credits in one
transaction.
*/
func (store *postgresStore) AddCrewCredits(ctx context.Context, movieID int, credits []CrewCredit) error {
	if len(credits) == 0 {
		return nil
	}

	creditQuery := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4)`,
		schema.MovieCrew.Table,
		strings.Join(schema.MovieCrew.Columns(), ", "),
	)

	err := pgx.BeginFunc(ctx, store.pool, func(tx pgx.Tx) error {
		for _, credit := range credits {
			if err := upsertPerson(ctx, tx, credit.Person); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, creditQuery,
				movieID, credit.Person.ID, credit.Job, credit.Department)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, fmt.Sprintf("add crew credits for movie %d", movieID))
}

// upsertPerson inserts or refreshes one person row inside a transaction. A
// person appearing in both cast and crew converges on the latest name and
// popularity seen.
func upsertPerson(ctx context.Context, tx pgx.Tx, person Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		schema.People.Table,
		schema.People.PersonID,
		schema.People.Name,
		schema.People.Popularity,
		schema.People.PersonID,
		schema.People.Name, schema.People.Name,
		schema.People.Popularity, schema.People.Popularity,
	)

	_, err := tx.Exec(ctx, query, person.ID, person.Name, person.Popularity)
	return err
}

/*
TableCounts returns the row count of every catalog table in creation order.
Table names come from the static schema declaration, never from input.
*/
func (store *postgresStore) TableCounts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(schema.TableNames()))
	for _, table := range schema.TableNames() {
		var rows int64
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
		if err := store.pool.QueryRow(ctx, query).Scan(&rows); err != nil {
			return nil, dberr.Wrap(err, fmt.Sprintf("count rows in %s", table))
		}
		counts = append(counts, TableCount{Table: table, Rows: rows})
	}
	return counts, nil
}
