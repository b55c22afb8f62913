// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package ingest drives the catalog ETL run: genre sync, paginated discovery,
and per-movie detail ingestion into the relational store.

A run never aborts on a single bad movie. Failed fetches and failed writes are
counted, logged, and skipped; every other movie still lands. The run-level
error return is reserved for conditions that make continuing pointless, such
as a dead context or an unreachable genre endpoint.
*/
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yaronav/moviefinder/internal/movie"
	"github.com/yaronav/moviefinder/internal/tmdb"
	"github.com/yaronav/moviefinder/pkg/slice"
)

const (
	// maxCastPerMovie caps how many top-billed cast entries are stored.
	maxCastPerMovie = 8
)

// crewJobs is the allow-list of production roles worth storing. Everything
// else in the crew payload (camera, sound, costume, ...) is dropped.
var crewJobs = map[string]struct{}{
	"Director":           {},
	"Producer":           {},
	"Executive Producer": {},
	"Writer":             {},
	"Screenplay":         {},
	"Story":              {},
}

// Catalog is the slice of the upstream API the pipeline consumes.
// [tmdb.Client] satisfies it.
type Catalog interface {
	ListGenres(ctx context.Context) ([]tmdb.Genre, error)
	DiscoverPage(ctx context.Context, page int) (*tmdb.DiscoverPage, error)
	MovieDetail(ctx context.Context, movieID int) (*tmdb.MovieDetail, error)
}

// Report summarizes one ingestion run.
type Report struct {
	// Attempted counts movies whose detail fetch was attempted.
	Attempted int
	// Ingested counts movies fully written to the store.
	Ingested int
	// Failed counts movies skipped after a fetch or write failure.
	Failed int
	// Tables holds the post-run row counts, in schema order.
	Tables []movie.TableCount
}

// Pipeline wires the catalog client to the store.
type Pipeline struct {
	catalog Catalog
	store   movie.Store
	logger  *slog.Logger
}

// NewPipeline constructs an ingestion pipeline.
func NewPipeline(catalog Catalog, store movie.Store, logger *slog.Logger) *Pipeline {
	return &Pipeline{catalog: catalog, store: store, logger: logger}
}

/*
Run ingests up to pages of popularity-sorted discovery.

Genres are synced first so the junction inserts never hit a missing foreign
key. Discovery then walks page by page; a failed page is logged and skipped.
Each discovered movie is fetched in detail and written; per-movie failures
increment the report's Failed counter and the run continues.
*/
func (p *Pipeline) Run(ctx context.Context, pages int) (*Report, error) {
	report := &Report{}

	genres, err := p.catalog.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync genres: %w", err)
	}
	if err := p.store.UpsertGenres(ctx, mapGenres(genres)); err != nil {
		return nil, fmt.Errorf("sync genres: %w", err)
	}
	p.logger.Info("genres synced", slog.Int("count", len(genres)))

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		discovered, err := p.catalog.DiscoverPage(ctx, page)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			p.logger.Error("discovery page failed, skipping",
				slog.Int("page", page),
				slog.Any("error", err),
			)
			continue
		}

		p.logger.Info("discovery page fetched",
			slog.Int("page", page),
			slog.Int("movies", len(discovered.Results)),
			slog.Int("total_pages", discovered.TotalPages),
		)

		for _, stub := range discovered.Results {
			report.Attempted++
			if err := p.ingestMovie(ctx, stub.ID); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}
				report.Failed++
				p.logger.Error("movie skipped",
					slog.Int("movie_id", stub.ID),
					slog.Any("error", err),
				)
				continue
			}
			report.Ingested++
		}

		if discovered.TotalPages > 0 && page >= discovered.TotalPages {
			break
		}
	}

	counts, err := p.store.TableCounts(ctx)
	if err != nil {
		p.logger.Error("row count summary failed", slog.Any("error", err))
	} else {
		report.Tables = counts
	}
	return report, nil
}

// ingestMovie fetches one movie's detail and writes it. Nothing is written
// when the fetch fails, so a skipped movie leaves no partial rows.
func (p *Pipeline) ingestMovie(ctx context.Context, movieID int) error {
	detail, err := p.catalog.MovieDetail(ctx, movieID)
	if err != nil {
		return fmt.Errorf("fetch detail: %w", err)
	}

	if err := p.store.UpsertMovie(ctx, mapMovie(detail)); err != nil {
		return err
	}
	if err := p.store.UpsertMovieGenres(ctx, detail.ID, genreIDs(detail.Genres)); err != nil {
		return err
	}
	if detail.Credits == nil {
		return nil
	}
	if err := p.store.AddCastCredits(ctx, detail.ID, mapCast(detail.Credits.Cast)); err != nil {
		return err
	}
	return p.store.AddCrewCredits(ctx, detail.ID, mapCrew(detail.Credits.Crew))
}

// # Payload Mapping

func mapGenres(genres []tmdb.Genre) []movie.Genre {
	return slice.Map(genres, func(g tmdb.Genre) movie.Genre {
		return movie.Genre{ID: g.ID, Name: g.Name}
	})
}

func genreIDs(genres []tmdb.Genre) []int {
	return slice.Map(genres, func(g tmdb.Genre) int { return g.ID })
}

func mapMovie(detail *tmdb.MovieDetail) *movie.Movie {
	return &movie.Movie{
		ID:               detail.ID,
		Title:            detail.TitleValue(),
		Overview:         detail.Overview,
		ReleaseDate:      detail.ReleaseDateValue(),
		Runtime:          detail.Runtime,
		Budget:           detail.BudgetValue(),
		Revenue:          detail.RevenueValue(),
		VoteAverage:      detail.VoteAverage,
		VoteCount:        detail.VoteCountValue(),
		Popularity:       detail.PopularityValue(),
		OriginalLanguage: detail.OriginalLanguage,
	}
}

// mapCast keeps the top-billed entries in payload order, capped at
// maxCastPerMovie.
func mapCast(cast []tmdb.CastMember) []movie.CastCredit {
	if len(cast) > maxCastPerMovie {
		cast = cast[:maxCastPerMovie]
	}
	return slice.Map(cast, func(member tmdb.CastMember) movie.CastCredit {
		return movie.CastCredit{
			Person: movie.Person{
				ID:         member.ID,
				Name:       member.NameValue(),
				Popularity: member.PopularityValue(),
			},
			Character: member.CharacterValue(),
			Order:     member.OrderValue(),
		}
	})
}

// mapCrew keeps only the roles in the crewJobs allow-list.
func mapCrew(crew []tmdb.CrewMember) []movie.CrewCredit {
	relevant := slice.Filter(crew, func(member tmdb.CrewMember) bool {
		_, ok := crewJobs[member.JobValue()]
		return ok
	})
	return slice.Map(relevant, func(member tmdb.CrewMember) movie.CrewCredit {
		return movie.CrewCredit{
			Person: movie.Person{
				ID:         member.ID,
				Name:       member.NameValue(),
				Popularity: member.PopularityValue(),
			},
			Job:        member.JobValue(),
			Department: member.DepartmentValue(),
		}
	})
}
