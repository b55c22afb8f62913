// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package movie defines the catalog's persistent entities and their data access
contract: movies, genres, people, and the cast/crew credit facts linking them.

Entities mirror the relational schema one to one. Optional catalog fields are
pointers and persist as NULL; numeric counters default to zero.
*/
package movie

import "time"

// Movie is one catalog title, keyed by the upstream catalog id.
type Movie struct {
	ID               int
	Title            string
	Overview         *string
	ReleaseDate      *time.Time
	Runtime          *int
	Budget           int64
	Revenue          int64
	VoteAverage      *float64
	VoteCount        int
	Popularity       float64
	OriginalLanguage *string
}

// Genre is one reference-table genre, keyed by the upstream catalog id.
type Genre struct {
	ID   int
	Name string
}

// Person is one cast or crew member, keyed by the upstream catalog id.
type Person struct {
	ID         int
	Name       string
	Popularity float64
}

// CastCredit is one acting credit for a movie.
type CastCredit struct {
	Person    Person
	Character string
	Order     int
}

// CrewCredit is one production credit for a movie.
type CrewCredit struct {
	Person     Person
	Job        string
	Department string
}

// TableCount pairs a table name with its current row count, for run summaries.
type TableCount struct {
	Table string
	Rows  int64
}
