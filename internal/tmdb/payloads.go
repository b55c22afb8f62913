// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package tmdb

import (
	"time"

	"github.com/yaronav/moviefinder/pkg/pointer"
)

// Defaults substituted for absent payload fields. Substitution happens here,
// in the typed accessors, and nowhere else.
const (
	// UnknownTitle replaces an absent movie title or person name.
	UnknownTitle = "Unknown"
	// UnbilledOrder sorts cast entries without a billing order last.
	UnbilledOrder = 999

	releaseDateLayout = "2006-01-02"
)

// GenreList is the response of the genre list endpoint.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Genre is a catalog genre reference. The endpoint always carries both
// fields, so they are not optional.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DiscoverPage is one page of the paginated discovery endpoint.
type DiscoverPage struct {
	Page         int         `json:"page"`
	Results      []MovieStub `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// MovieStub is the summary entry a discovery page carries per movie. Only the
// id matters to the pipeline; the title is kept for progress logging.
type MovieStub struct {
	ID    int     `json:"id"`
	Title *string `json:"title"`
}

// MovieDetail is the detail endpoint response with credits appended.
//
// Every field the catalog may omit is a pointer: present/absent is explicit,
// and the accessors below apply the documented defaults in one place.
type MovieDetail struct {
	ID               int      `json:"id"`
	Title            *string  `json:"title"`
	Overview         *string  `json:"overview"`
	ReleaseDate      *string  `json:"release_date"`
	Runtime          *int     `json:"runtime"`
	Budget           *int64   `json:"budget"`
	Revenue          *int64   `json:"revenue"`
	VoteAverage      *float64 `json:"vote_average"`
	VoteCount        *int     `json:"vote_count"`
	Popularity       *float64 `json:"popularity"`
	OriginalLanguage *string  `json:"original_language"`
	Genres           []Genre  `json:"genres"`
	Credits          *Credits `json:"credits"`
}

// Credits carries the cast and crew lists embedded in a detail response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is one acting credit.
type CastMember struct {
	ID         int      `json:"id"`
	Name       *string  `json:"name"`
	Popularity *float64 `json:"popularity"`
	Character  *string  `json:"character"`
	Order      *int     `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	ID         int      `json:"id"`
	Name       *string  `json:"name"`
	Popularity *float64 `json:"popularity"`
	Job        *string  `json:"job"`
	Department *string  `json:"department"`
}

// # Typed accessors

// TitleValue returns the title, or [UnknownTitle] when absent.
func (d *MovieDetail) TitleValue() string {
	return pointer.Fallback(d.Title, UnknownTitle)
}

// ReleaseDateValue parses the release date. Absent or malformed dates yield
// nil rather than an error: the row is stored with a NULL date.
func (d *MovieDetail) ReleaseDateValue() *time.Time {
	if d.ReleaseDate == nil || *d.ReleaseDate == "" {
		return nil
	}
	parsed, err := time.Parse(releaseDateLayout, *d.ReleaseDate)
	if err != nil {
		return nil
	}
	return &parsed
}

// BudgetValue returns the budget, defaulting to 0.
func (d *MovieDetail) BudgetValue() int64 { return pointer.Val(d.Budget) }

// RevenueValue returns the revenue, defaulting to 0.
func (d *MovieDetail) RevenueValue() int64 { return pointer.Val(d.Revenue) }

// VoteCountValue returns the vote count, defaulting to 0.
func (d *MovieDetail) VoteCountValue() int { return pointer.Val(d.VoteCount) }

// PopularityValue returns the popularity score, defaulting to 0.0.
func (d *MovieDetail) PopularityValue() float64 { return pointer.Val(d.Popularity) }

// NameValue returns the cast member's name, or [UnknownTitle] when absent.
func (m CastMember) NameValue() string { return pointer.Fallback(m.Name, UnknownTitle) }

// PopularityValue returns the cast member's popularity, defaulting to 0.0.
func (m CastMember) PopularityValue() float64 { return pointer.Val(m.Popularity) }

// CharacterValue returns the character name, defaulting to empty.
func (m CastMember) CharacterValue() string { return pointer.Val(m.Character) }

// OrderValue returns the billing order, or [UnbilledOrder] when absent.
func (m CastMember) OrderValue() int { return pointer.Fallback(m.Order, UnbilledOrder) }

// NameValue returns the crew member's name, or [UnknownTitle] when absent.
func (m CrewMember) NameValue() string { return pointer.Fallback(m.Name, UnknownTitle) }

// PopularityValue returns the crew member's popularity, defaulting to 0.0.
func (m CrewMember) PopularityValue() float64 { return pointer.Val(m.Popularity) }

// JobValue returns the job title, defaulting to empty.
func (m CrewMember) JobValue() string { return pointer.Val(m.Job) }

// DepartmentValue returns the department, defaulting to empty.
func (m CrewMember) DepartmentValue() string { return pointer.Val(m.Department) }
