// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/property-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the property-service database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, db, err := openMigrations(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		results, err := provider.Up(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		return renderResults(cmd, results)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back the last migration, or every migration above version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := int64(-1)
		if len(args) == 1 {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[0])
			}
			target = v
		}

		provider, db, err := openMigrations(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		var results []*goose.MigrationResult
		if target < 0 {
			result, err := provider.Down(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to roll back: %w", err)
			}
			results = append(results, result)
		} else if results, err = provider.DownTo(cmd.Context(), target); err != nil {
			return fmt.Errorf("failed to roll back to %d: %w", target, err)
		}

		return renderResults(cmd, results)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, db, err := openMigrations(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		statuses, err := provider.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}

		return render(cmd, statuses, func(w io.Writer) {
			fmt.Fprintf(w, "VERSION\tAPPLIED AT\tMIGRATION\n")
			for _, s := range statuses {
				appliedAt := "pending"
				if s.State == goose.StateApplied {
					appliedAt = s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, appliedAt, s.Source.Path)
			}
		})
	},
}

var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when the database lags behind the embedded schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, db, err := openMigrations(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		report, err := migrations.Check(cmd.Context(), provider)
		if err != nil && !errors.Is(err, migrations.ErrPending) {
			return err
		}

		if rerr := render(cmd, report, func(w io.Writer) {
			fmt.Fprintf(w, "Current:\t%d\n", report.Current)
			fmt.Fprintf(w, "Latest:\t%d\n", report.Latest)
			fmt.Fprintf(w, "Pending:\t%d\n", len(report.Pending))
		}); rerr != nil {
			return rerr
		}

		return err
	},
}

// openMigrations connects with the --dsn flag, goose logging is silenced
// when the output has to stay machine readable
func openMigrations(cmd *cobra.Command) (*goose.Provider, *sql.DB, error) {
	dsn, _ := cmd.Flags().GetString("dsn")

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(cmd.Context()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("DB connection failed: %w", err)
	}

	var opts []goose.ProviderOption
	if outputFormat == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := migrations.NewProvider(db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return provider, db, nil
}

func renderResults(cmd *cobra.Command, results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	return render(cmd, map[string]any{"applied": results}, func(w io.Writer) {
		if len(results) == 0 {
			fmt.Fprintln(w, "Nothing to do")
			return
		}

		fmt.Fprintf(w, "VERSION\tDIRECTION\tDURATION\n")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.Source.Version, r.Direction, r.Duration)
		}
	})
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string")
	_ = migrateCmd.MarkPersistentFlagRequired("dsn")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}
