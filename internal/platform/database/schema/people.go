// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema

// PeopleTable represents the 'people' table, shared by cast and crew credits.
type PeopleTable struct {
	Table      string
	PersonID   string
	Name       string
	Popularity string
}

// People is the schema definition for the people table.
var People = PeopleTable{
	Table:      "people",
	PersonID:   "person_id",
	Name:       "name",
	Popularity: "popularity",
}

func (t PeopleTable) Columns() []string {
	return []string{t.PersonID, t.Name, t.Popularity}
}
