// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and the
// skip-and-continue error handling used by the ingestion and query layers.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = errors.New("dberr: not found")

// Wrap annotates a database error with the action that produced it.
// It maps pgx.ErrNoRows onto [ErrNotFound] so callers don't depend on pgx.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", action, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", action, err)
}

// sqlState extracts the PostgreSQL SQLSTATE code from an error chain.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateObject reports whether err is the "already exists" family of DDL
// errors (duplicate table, index, or other named object). The schema
// provisioner treats these as non-fatal.
func IsDuplicateObject(err error) bool {
	switch sqlState(err) {
	case pgerrcode.DuplicateTable, pgerrcode.DuplicateObject:
		return true
	}
	return false
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign-key violation.
func IsForeignKeyViolation(err error) bool {
	return sqlState(err) == pgerrcode.ForeignKeyViolation
}
