// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package provision creates the catalog schema: tables in foreign-key order,
then the secondary indexes.

Provisioning is idempotent. Tables use IF NOT EXISTS; index creation treats
the "already exists" SQLSTATE as a skip. A failed index is logged and does
not stop the run, since every remaining index is independent of it.
*/
package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaronav/moviefinder/internal/platform/database/schema"
	"github.com/yaronav/moviefinder/internal/platform/dberr"
)

// Provisioner creates (and optionally resets) the catalog schema.
type Provisioner struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewProvisioner constructs a schema provisioner.
func NewProvisioner(pool *pgxpool.Pool, logger *slog.Logger) *Provisioner {
	return &Provisioner{pool: pool, logger: logger}
}

// Summary reports what one provisioning run did.
type Summary struct {
	TablesCreated  int
	IndexesCreated int
	IndexesSkipped int
}

/*
Run provisions the schema. With reset set, every catalog table is dropped
first, dependents before parents, and all data is lost.
*/
func (p *Provisioner) Run(ctx context.Context, reset bool) (*Summary, error) {
	if reset {
		if err := p.dropAll(ctx); err != nil {
			return nil, err
		}
	}

	summary := &Summary{}

	for _, table := range schema.Tables() {
		if _, err := p.pool.Exec(ctx, table.Create); err != nil {
			return nil, dberr.Wrap(err, fmt.Sprintf("create table %s", table.Name))
		}
		summary.TablesCreated++
		p.logger.Info("table ready", slog.String("table", table.Name))
	}

	for _, index := range schema.Indexes() {
		_, err := p.pool.Exec(ctx, index.Create)
		switch {
		case err == nil:
			summary.IndexesCreated++
			p.logger.Info("index created",
				slog.String("index", index.Name),
				slog.String("purpose", index.Description),
			)
		case dberr.IsDuplicateObject(err):
			summary.IndexesSkipped++
			p.logger.Info("index already exists", slog.String("index", index.Name))
		default:
			// A missing secondary index degrades performance, not correctness.
			summary.IndexesSkipped++
			p.logger.Error("index creation failed",
				slog.String("index", index.Name),
				slog.Any("error", err),
			)
		}
	}

	return summary, nil
}

// dropAll removes every catalog table, dependents first.
func (p *Provisioner) dropAll(ctx context.Context) error {
	for _, table := range schema.DropOrder() {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.pool.Exec(ctx, query); err != nil {
			return dberr.Wrap(err, fmt.Sprintf("drop table %s", table))
		}
		p.logger.Warn("table dropped", slog.String("table", table))
	}
	return nil
}
