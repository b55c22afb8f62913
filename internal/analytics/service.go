// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package analytics

import (
	"context"
	"log/slog"
)

// Defaults applied when a caller passes a zero threshold.
const (
	DefaultLimit     = 20
	DefaultMinMovies = 20
	DefaultMinShared = 2
	DefaultMinRating = 7.0
)

// Service fronts the repository for interactive use. A failed query is
// logged and yields an empty result, so one bad question never ends a
// session of them.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs an analytics service.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// SearchOverviews runs the overview full-text search. A zero limit means
// [DefaultLimit].
func (s *Service) SearchOverviews(ctx context.Context, query string, limit int) []OverviewMatch {
	if limit <= 0 {
		limit = DefaultLimit
	}
	matches, err := s.repository.SearchOverviews(ctx, query, limit)
	if err != nil {
		s.logger.Error("overview search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil
	}
	return matches
}

// SearchTitles runs the title search. A zero limit means [DefaultLimit].
func (s *Service) SearchTitles(ctx context.Context, query string, limit int) []TitleMatch {
	if limit <= 0 {
		limit = DefaultLimit
	}
	matches, err := s.repository.SearchTitles(ctx, query, limit)
	if err != nil {
		s.logger.Error("title search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil
	}
	return matches
}

// TopGenres returns genre statistics. A zero minMovies means
// [DefaultMinMovies].
func (s *Service) TopGenres(ctx context.Context, minMovies int) []GenreStats {
	if minMovies <= 0 {
		minMovies = DefaultMinMovies
	}
	stats, err := s.repository.TopGenres(ctx, minMovies)
	if err != nil {
		s.logger.Error("genre statistics failed", slog.Any("error", err))
		return nil
	}
	return stats
}

// Collaborators returns the actor's frequent co-stars. A zero minShared
// means [DefaultMinShared].
func (s *Service) Collaborators(ctx context.Context, actorName string, minShared int) []Collaboration {
	if minShared <= 0 {
		minShared = DefaultMinShared
	}
	collaborations, err := s.repository.Collaborators(ctx, actorName, minShared)
	if err != nil {
		s.logger.Error("collaboration query failed",
			slog.String("actor", actorName),
			slog.Any("error", err),
		)
		return nil
	}
	return collaborations
}

// DirectorFilmography returns the director's films at or above minRating.
// A zero minRating means [DefaultMinRating].
func (s *Service) DirectorFilmography(ctx context.Context, directorName string, minRating float64) []DirectorFilm {
	if minRating <= 0 {
		minRating = DefaultMinRating
	}
	films, err := s.repository.DirectorFilmography(ctx, directorName, minRating)
	if err != nil {
		s.logger.Error("filmography query failed",
			slog.String("director", directorName),
			slog.Any("error", err),
		)
		return nil
	}
	return films
}

// CatalogSize returns the movie count, or zero with a logged error.
func (s *Service) CatalogSize(ctx context.Context) int64 {
	count, err := s.repository.CatalogSize(ctx)
	if err != nil {
		s.logger.Error("catalog size probe failed", slog.Any("error", err))
		return 0
	}
	return count
}
