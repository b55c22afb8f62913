// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronav/moviefinder/internal/platform/database/schema"
)

/*
TestTables_Shape verifies the table inventory: six tables, parents declared
before the tables that reference them.
*/
func TestTables_Shape(t *testing.T) {
	tables := schema.Tables()
	require.Len(t, tables, 6)

	position := make(map[string]int, len(tables))
	for i, table := range tables {
		position[table.Name] = i
		assert.Contains(t, table.Create, "CREATE TABLE IF NOT EXISTS "+table.Name)
	}

	// Junction and fact tables must come after both parents.
	assert.Greater(t, position[schema.MovieGenres.Table], position[schema.Movies.Table])
	assert.Greater(t, position[schema.MovieGenres.Table], position[schema.Genres.Table])
	assert.Greater(t, position[schema.MovieCast.Table], position[schema.People.Table])
	assert.Greater(t, position[schema.MovieCrew.Table], position[schema.People.Table])
}

/*
TestTables_CascadingForeignKeys verifies that association and fact tables
cascade on parent deletion.
*/
func TestTables_CascadingForeignKeys(t *testing.T) {
	for _, table := range schema.Tables() {
		switch table.Name {
		case schema.MovieGenres.Table, schema.MovieCast.Table, schema.MovieCrew.Table:
			assert.Contains(t, table.Create, "ON DELETE CASCADE", table.Name)
		}
	}
}

/*
TestIndexes_Inventory verifies the index set: nine indexes, exactly two of
them full-text (GIN over the generated tsvector columns).
*/
func TestIndexes_Inventory(t *testing.T) {
	indexes := schema.Indexes()
	require.Len(t, indexes, 9)

	gin := 0
	seen := make(map[string]bool, len(indexes))
	for _, idx := range indexes {
		assert.False(t, seen[idx.Name], "duplicate index name %s", idx.Name)
		seen[idx.Name] = true

		assert.Contains(t, idx.Create, idx.Name)
		if strings.Contains(idx.Create, "USING GIN") {
			gin++
		}
	}
	assert.Equal(t, 2, gin)
}

/*
TestDDL_NoPlaceholders ensures no DDL statement expects bound parameters:
identifier names are static data, never interpolated from input.
*/
func TestDDL_NoPlaceholders(t *testing.T) {
	for _, table := range schema.Tables() {
		assert.NotContains(t, table.Create, "$1", table.Name)
		assert.NotContains(t, table.Create, "%s", table.Name)
	}
	for _, idx := range schema.Indexes() {
		assert.NotContains(t, idx.Create, "$1", idx.Name)
		assert.NotContains(t, idx.Create, "%s", idx.Name)
	}
}

/*
TestDropOrder is the reverse of creation order, so dependents drop first.
*/
func TestDropOrder(t *testing.T) {
	names := schema.TableNames()
	drop := schema.DropOrder()
	require.Len(t, drop, len(names))

	for i := range names {
		assert.Equal(t, names[len(names)-1-i], drop[i])
	}
}
