// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaronav/moviefinder/internal/platform/database/schema"
)

/*
TestCollaboratorsSQL_TitleOrdering verifies the shared-title aggregate lists
titles highest rated first. Deduplication happens in the CTE, one row per
(collaborator, movie), so the aggregate must not carry a DISTINCT of its own:
that would force the order key back to the aggregated expression and make the
list alphabetical.
*/
func TestCollaboratorsSQL_TitleOrdering(t *testing.T) {
	sql := collaboratorsSQL()

	assert.Contains(t, sql, fmt.Sprintf(
		"string_agg(m.%s, ', ' ORDER BY m.%s DESC NULLS LAST)",
		schema.Movies.Title, schema.Movies.VoteAverage,
	))
	assert.NotContains(t, sql, "string_agg(DISTINCT")
	assert.Contains(t, sql, fmt.Sprintf(
		"SELECT DISTINCT c2.%s AS person_id, c1.%s AS movie_id",
		schema.MovieCast.PersonID, schema.MovieCast.MovieID,
	))

	// All identifiers come from the schema declaration; none survive as verbs.
	assert.NotContains(t, sql, "%s")
	assert.NotContains(t, sql, "%d")
}
