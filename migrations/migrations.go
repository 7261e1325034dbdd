// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

var ErrPending = errors.New("migrations are pending")

// Report compares the versions applied to the database with the embedded set
type Report struct {
	Current int64   `json:"current"`
	Latest  int64   `json:"latest"`
	Pending []int64 `json:"pending"`
}

// NewProvider returns a goose provider over the embedded property-service schema
func NewProvider(db *sql.DB, opts ...goose.ProviderOption) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

// Check returns ErrPending alongside the report when any embedded migration
// has not been applied yet
func Check(ctx context.Context, provider *goose.Provider) (*Report, error) {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	r := &Report{Pending: []int64{}}
	for _, s := range statuses {
		v := s.Source.Version
		if v > r.Latest {
			r.Latest = v
		}

		if s.State != goose.StateApplied {
			r.Pending = append(r.Pending, v)
			continue
		}

		if v > r.Current {
			r.Current = v
		}
	}

	if len(r.Pending) > 0 {
		return r, ErrPending
	}

	return r, nil
}

// Checker reports schema drift to the readiness endpoint
type Checker struct {
	provider *goose.Provider
}

func (c *Checker) CheckSchema(ctx context.Context) error {
	r, err := Check(ctx, c.provider)
	if errors.Is(err, ErrPending) {
		return fmt.Errorf("%w: database at %d, expected %d", err, r.Current, r.Latest)
	}

	return err
}

func NewChecker(db *sql.DB) (*Checker, error) {
	provider, err := NewProvider(db, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return nil, err
	}

	return &Checker{provider: provider}, nil
}
