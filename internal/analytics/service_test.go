// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package analytics

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeRepository records the thresholds it was called with and serves a
// canned answer or error.
type fakeRepository struct {
	limit     int
	minMovies int
	minShared int
	minRating float64

	overviews []OverviewMatch
	titles    []TitleMatch
	genres    []GenreStats
	costars   []Collaboration
	films     []DirectorFilm
	size      int64
	err       error
}

func (f *fakeRepository) SearchOverviews(_ context.Context, _ string, limit int) ([]OverviewMatch, error) {
	f.limit = limit
	return f.overviews, f.err
}

func (f *fakeRepository) SearchTitles(_ context.Context, _ string, limit int) ([]TitleMatch, error) {
	f.limit = limit
	return f.titles, f.err
}

func (f *fakeRepository) TopGenres(_ context.Context, minMovies int) ([]GenreStats, error) {
	f.minMovies = minMovies
	return f.genres, f.err
}

func (f *fakeRepository) Collaborators(_ context.Context, _ string, minShared int) ([]Collaboration, error) {
	f.minShared = minShared
	return f.costars, f.err
}

func (f *fakeRepository) DirectorFilmography(_ context.Context, _ string, minRating float64) ([]DirectorFilm, error) {
	f.minRating = minRating
	return f.films, f.err
}

func (f *fakeRepository) CatalogSize(context.Context) (int64, error) {
	return f.size, f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

/*
TestService_AppliesDefaults: zero thresholds are replaced with the documented
defaults before they reach the repository.
*/
func TestService_AppliesDefaults(t *testing.T) {
	repository := &fakeRepository{}
	service := NewService(repository, quietLogger())
	ctx := context.Background()

	service.SearchOverviews(ctx, "space exploration", 0)
	assert.Equal(t, DefaultLimit, repository.limit)

	service.SearchTitles(ctx, "Star", -1)
	assert.Equal(t, DefaultLimit, repository.limit)

	service.TopGenres(ctx, 0)
	assert.Equal(t, DefaultMinMovies, repository.minMovies)

	service.Collaborators(ctx, "Tom Hanks", 0)
	assert.Equal(t, DefaultMinShared, repository.minShared)

	service.DirectorFilmography(ctx, "Christopher Nolan", 0)
	assert.Equal(t, DefaultMinRating, repository.minRating)
}

/*
TestService_PassesExplicitThresholds: non-zero thresholds go through as-is.
*/
func TestService_PassesExplicitThresholds(t *testing.T) {
	repository := &fakeRepository{}
	service := NewService(repository, quietLogger())
	ctx := context.Background()

	service.SearchOverviews(ctx, "time travel", 5)
	assert.Equal(t, 5, repository.limit)

	service.TopGenres(ctx, 50)
	assert.Equal(t, 50, repository.minMovies)

	service.DirectorFilmography(ctx, "Steven Spielberg", 7.5)
	assert.Equal(t, 7.5, repository.minRating)
}

/*
TestService_SwallowsQueryFailures: a repository error becomes an empty
result, never a panic or propagated failure.
*/
func TestService_SwallowsQueryFailures(t *testing.T) {
	repository := &fakeRepository{err: errors.New("connection lost")}
	service := NewService(repository, quietLogger())
	ctx := context.Background()

	assert.Empty(t, service.SearchOverviews(ctx, "anything", 10))
	assert.Empty(t, service.SearchTitles(ctx, "anything", 10))
	assert.Empty(t, service.TopGenres(ctx, 20))
	assert.Empty(t, service.Collaborators(ctx, "Anyone", 2))
	assert.Empty(t, service.DirectorFilmography(ctx, "Anyone", 7.0))
	assert.Zero(t, service.CatalogSize(ctx))
}

/*
TestService_ReturnsRepositoryResults verifies the pass-through path.
*/
func TestService_ReturnsRepositoryResults(t *testing.T) {
	rating := 8.8
	repository := &fakeRepository{
		titles: []TitleMatch{{Title: "Interstellar", Rating: &rating}},
		size:   412,
	}
	service := NewService(repository, quietLogger())
	ctx := context.Background()

	matches := service.SearchTitles(ctx, "Inter", 10)
	assert.Len(t, matches, 1)
	assert.Equal(t, "Interstellar", matches[0].Title)
	assert.EqualValues(t, 412, service.CatalogSize(ctx))
}
