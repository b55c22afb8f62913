// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronav/moviefinder/internal/movie"
	"github.com/yaronav/moviefinder/internal/tmdb"
	"github.com/yaronav/moviefinder/pkg/pointer"
)

// # Test Doubles

// fakeCatalog serves canned payloads and records which details were fetched.
type fakeCatalog struct {
	genres     []tmdb.Genre
	pages      []*tmdb.DiscoverPage
	details    map[int]*tmdb.MovieDetail
	failDetail map[int]error
	genresErr  error

	discoverCalls int
}

func (f *fakeCatalog) ListGenres(context.Context) ([]tmdb.Genre, error) {
	return f.genres, f.genresErr
}

func (f *fakeCatalog) DiscoverPage(_ context.Context, page int) (*tmdb.DiscoverPage, error) {
	f.discoverCalls++
	if page < 1 || page > len(f.pages) {
		return nil, fmt.Errorf("no page %d", page)
	}
	return f.pages[page-1], nil
}

func (f *fakeCatalog) MovieDetail(_ context.Context, movieID int) (*tmdb.MovieDetail, error) {
	if err := f.failDetail[movieID]; err != nil {
		return nil, err
	}
	detail, ok := f.details[movieID]
	if !ok {
		return nil, fmt.Errorf("no detail %d", movieID)
	}
	return detail, nil
}

// memoryStore mimics the real store's write semantics: keyed maps for the
// idempotent entities, append-only slices for the credit facts.
type memoryStore struct {
	genres      map[int]string
	movies      map[int]*movie.Movie
	movieGenres map[string]struct{}
	people      map[int]movie.Person
	cast        []movie.CastCredit
	crew        []movie.CrewCredit
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		genres:      map[int]string{},
		movies:      map[int]*movie.Movie{},
		movieGenres: map[string]struct{}{},
		people:      map[int]movie.Person{},
	}
}

func (s *memoryStore) UpsertGenres(_ context.Context, genres []movie.Genre) error {
	for _, genre := range genres {
		s.genres[genre.ID] = genre.Name
	}
	return nil
}

func (s *memoryStore) UpsertMovie(_ context.Context, m *movie.Movie) error {
	if existing, ok := s.movies[m.ID]; ok {
		existing.Title = m.Title
		existing.Overview = m.Overview
		existing.VoteAverage = m.VoteAverage
		existing.VoteCount = m.VoteCount
		existing.Popularity = m.Popularity
		return nil
	}
	clone := *m
	s.movies[m.ID] = &clone
	return nil
}

func (s *memoryStore) UpsertMovieGenres(_ context.Context, movieID int, genreIDs []int) error {
	for _, genreID := range genreIDs {
		s.movieGenres[fmt.Sprintf("%d:%d", movieID, genreID)] = struct{}{}
	}
	return nil
}

func (s *memoryStore) AddCastCredits(_ context.Context, _ int, credits []movie.CastCredit) error {
	for _, credit := range credits {
		s.people[credit.Person.ID] = credit.Person
	}
	s.cast = append(s.cast, credits...)
	return nil
}

func (s *memoryStore) AddCrewCredits(_ context.Context, _ int, credits []movie.CrewCredit) error {
	for _, credit := range credits {
		s.people[credit.Person.ID] = credit.Person
	}
	s.crew = append(s.crew, credits...)
	return nil
}

func (s *memoryStore) TableCounts(context.Context) ([]movie.TableCount, error) {
	return []movie.TableCount{
		{Table: "movies", Rows: int64(len(s.movies))},
		{Table: "movie_cast", Rows: int64(len(s.cast))},
	}, nil
}

// # Fixtures

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func detailFixture(id int, title string) *tmdb.MovieDetail {
	return &tmdb.MovieDetail{
		ID:          id,
		Title:       pointer.To(title),
		Overview:    pointer.To("an overview"),
		ReleaseDate: pointer.To("2010-07-16"),
		VoteAverage: pointer.To(8.4),
		VoteCount:   pointer.To(1000),
		Popularity:  pointer.To(55.5),
		Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}},
		Credits: &tmdb.Credits{
			Cast: []tmdb.CastMember{
				{ID: id*100 + 1, Name: pointer.To("Lead Actor"), Order: pointer.To(0)},
			},
			Crew: []tmdb.CrewMember{
				{ID: id*100 + 2, Name: pointer.To("The Director"), Job: pointer.To("Director"), Department: pointer.To("Directing")},
				{ID: id*100 + 3, Name: pointer.To("The Gaffer"), Job: pointer.To("Gaffer"), Department: pointer.To("Lighting")},
			},
		},
	}
}

func singlePage(stubIDs ...int) []*tmdb.DiscoverPage {
	stubs := make([]tmdb.MovieStub, 0, len(stubIDs))
	for _, id := range stubIDs {
		stubs = append(stubs, tmdb.MovieStub{ID: id})
	}
	return []*tmdb.DiscoverPage{{Page: 1, Results: stubs, TotalPages: 1}}
}

// # Tests

/*
TestRun_IngestsDiscoveredMovies: the happy path writes genres, movies,
junction rows and credits, and the report reflects it.
*/
func TestRun_IngestsDiscoveredMovies(t *testing.T) {
	catalog := &fakeCatalog{
		genres: []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}},
		pages:  singlePage(1, 2),
		details: map[int]*tmdb.MovieDetail{
			1: detailFixture(1, "Inception"),
			2: detailFixture(2, "Interstellar"),
		},
	}
	store := newMemoryStore()

	report, err := NewPipeline(catalog, store, discardLogger()).Run(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 2, report.Ingested)
	assert.Equal(t, 0, report.Failed)

	assert.Len(t, store.genres, 2)
	assert.Len(t, store.movies, 2)
	assert.Equal(t, "Inception", store.movies[1].Title)
	assert.Contains(t, store.movieGenres, "1:28")
	assert.Len(t, store.cast, 2)
	// The gaffer is filtered out; only the two directors survive.
	assert.Len(t, store.crew, 2)
	assert.NotEmpty(t, report.Tables)
}

/*
TestRun_CastCapAndCrewFilter: only the first eight billed cast entries and
allow-listed crew roles are stored.
*/
func TestRun_CastCapAndCrewFilter(t *testing.T) {
	detail := detailFixture(1, "Ensemble Piece")
	detail.Credits.Cast = nil
	for i := 0; i < 12; i++ {
		detail.Credits.Cast = append(detail.Credits.Cast, tmdb.CastMember{
			ID:    1000 + i,
			Name:  pointer.To(fmt.Sprintf("Actor %d", i)),
			Order: pointer.To(i),
		})
	}
	detail.Credits.Crew = []tmdb.CrewMember{
		{ID: 1, Name: pointer.To("A"), Job: pointer.To("Director")},
		{ID: 2, Name: pointer.To("B"), Job: pointer.To("Screenplay")},
		{ID: 3, Name: pointer.To("C"), Job: pointer.To("Stunt Coordinator")},
		{ID: 4, Name: pointer.To("D"), Job: pointer.To("Executive Producer")},
	}

	catalog := &fakeCatalog{
		pages:   singlePage(1),
		details: map[int]*tmdb.MovieDetail{1: detail},
	}
	store := newMemoryStore()

	_, err := NewPipeline(catalog, store, discardLogger()).Run(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, store.cast, 8)
	assert.Equal(t, "Actor 0", store.cast[0].Person.Name)
	assert.Equal(t, "Actor 7", store.cast[7].Person.Name)

	require.Len(t, store.crew, 3)
	jobs := []string{store.crew[0].Job, store.crew[1].Job, store.crew[2].Job}
	assert.NotContains(t, jobs, "Stunt Coordinator")
}

/*
TestRun_FailedDetailIsSkipped: a failing detail fetch counts as one failure,
writes nothing for that movie, and the rest of the page still lands.
*/
func TestRun_FailedDetailIsSkipped(t *testing.T) {
	catalog := &fakeCatalog{
		pages: singlePage(1, 2, 3),
		details: map[int]*tmdb.MovieDetail{
			1: detailFixture(1, "First"),
			3: detailFixture(3, "Third"),
		},
		failDetail: map[int]error{2: errors.New("503 after retries")},
	}
	store := newMemoryStore()

	report, err := NewPipeline(catalog, store, discardLogger()).Run(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Ingested)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, store.movies, 2)
	assert.NotContains(t, store.movies, 2)
}

/*
TestRun_RerunSemantics: a second identical run leaves movies, genres and
people untouched but appends a second copy of every credit row.
*/
func TestRun_RerunSemantics(t *testing.T) {
	newCatalog := func() *fakeCatalog {
		return &fakeCatalog{
			genres:  []tmdb.Genre{{ID: 28, Name: "Action"}},
			pages:   singlePage(1),
			details: map[int]*tmdb.MovieDetail{1: detailFixture(1, "Inception")},
		}
	}
	store := newMemoryStore()
	ctx := context.Background()

	_, err := NewPipeline(newCatalog(), store, discardLogger()).Run(ctx, 1)
	require.NoError(t, err)
	_, err = NewPipeline(newCatalog(), store, discardLogger()).Run(ctx, 1)
	require.NoError(t, err)

	assert.Len(t, store.movies, 1)
	assert.Len(t, store.genres, 1)
	assert.Len(t, store.movieGenres, 1)
	assert.Len(t, store.people, 2)
	// Credit facts double: no natural key to dedupe on.
	assert.Len(t, store.cast, 2)
	assert.Len(t, store.crew, 2)
}

/*
TestRun_GenreRenameWins: re-ingestion refreshes a renamed genre.
*/
func TestRun_GenreRenameWins(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	first := &fakeCatalog{genres: []tmdb.Genre{{ID: 878, Name: "Science Fiction"}}, pages: singlePage()}
	_, err := NewPipeline(first, store, discardLogger()).Run(ctx, 1)
	require.NoError(t, err)

	second := &fakeCatalog{genres: []tmdb.Genre{{ID: 878, Name: "Sci-Fi"}}, pages: singlePage()}
	_, err = NewPipeline(second, store, discardLogger()).Run(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Sci-Fi", store.genres[878])
}

/*
TestRun_GenreSyncFailureAborts: without genres the junction writes would all
fail, so the run stops up front.
*/
func TestRun_GenreSyncFailureAborts(t *testing.T) {
	catalog := &fakeCatalog{genresErr: errors.New("connection refused")}
	store := newMemoryStore()

	_, err := NewPipeline(catalog, store, discardLogger()).Run(context.Background(), 1)
	assert.Error(t, err)
	assert.Empty(t, store.movies)
}

/*
TestRun_StopsAtTotalPages: asking for more pages than the catalog reports
does not over-fetch.
*/
func TestRun_StopsAtTotalPages(t *testing.T) {
	catalog := &fakeCatalog{
		pages: []*tmdb.DiscoverPage{
			{Page: 1, Results: []tmdb.MovieStub{{ID: 1}}, TotalPages: 2},
			{Page: 2, Results: []tmdb.MovieStub{{ID: 2}}, TotalPages: 2},
		},
		details: map[int]*tmdb.MovieDetail{
			1: detailFixture(1, "One"),
			2: detailFixture(2, "Two"),
		},
	}
	store := newMemoryStore()

	report, err := NewPipeline(catalog, store, discardLogger()).Run(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.discoverCalls)
	assert.Equal(t, 2, report.Ingested)
}
