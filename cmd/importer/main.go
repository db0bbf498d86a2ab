// Package main is the catalog importer: a CLI that loads a JSON seed file of
// raw package records into Postgres. Records are run through the normalizer
// before insertion so garbage rows (no usable slug, no destination key) are
// rejected at the door instead of polluting every aggregate downstream.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" database/sql driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/tripdeck/backend/internal/catalog"
	"github.com/tripdeck/backend/internal/domain"
	"github.com/tripdeck/backend/internal/repo"
	"github.com/tripdeck/backend/migrations"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "importer",
		Usage: "Load travel package seed data into the Tripdeck catalog",
		Commands: []*cli.Command{
			loadCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("importer failed", "error", err)
		os.Exit(1)
	}
}

// loadCmd creates the load command.
func loadCmd() *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Read a JSON array of raw packages and insert them",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "Path to the JSON seed file"},
			&cli.StringFlag{Name: "database-url", EnvVars: []string{"DATABASE_URL"}, Required: true, Usage: "Postgres connection string"},
			&cli.BoolFlag{Name: "skip-invalid", Usage: "Skip invalid records instead of aborting"},
		},
		Action: func(c *cli.Context) error {
			raws, err := readSeedFile(c.String("file"))
			if err != nil {
				return err
			}
			return load(c.Context, c.String("database-url"), raws, c.Bool("skip-invalid"))
		},
	}
}

// readSeedFile parses the seed file into raw package records.
func readSeedFile(path string) ([]domain.RawPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var raws []domain.RawPackage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return raws, nil
}

// load migrates the schema, validates every record, and inserts the valid
// ones. With skip-invalid false, the first bad record aborts before any
// insert happens.
func load(ctx context.Context, databaseURL string, raws []domain.RawPackage, skipInvalid bool) error {
	if err := migrateUp(databaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	normalizer := catalog.NewDefaultNormalizer()
	valid := make([]domain.RawPackage, 0, len(raws))
	for i, raw := range raws {
		if err := validate(normalizer, raw); err != nil {
			if skipInvalid {
				slog.Warn("skipping invalid record", "index", i, "title", raw.Title, "error", err)
				continue
			}
			return fmt.Errorf("record %d (%q): %w", i, raw.Title, err)
		}
		valid = append(valid, raw)
	}

	packages := repo.NewPackageRepo(pool)
	for _, raw := range valid {
		// Persist the derived slug so the stored row matches what the API
		// will serve.
		if raw.Slug == "" {
			raw.Slug = catalog.Slugify(raw.Title)
		}
		if _, err := packages.Create(ctx, raw); err != nil {
			return fmt.Errorf("insert %q: %w", raw.Slug, err)
		}
	}

	slog.Info("import complete", "inserted", len(valid), "skipped", len(raws)-len(valid))
	return nil
}

// validate rejects records the catalog could never surface: without a slug
// there is no package URL, and without a destination key the aggregator has
// nothing to group on.
func validate(n *catalog.Normalizer, raw domain.RawPackage) error {
	pkg := n.Normalize(raw)
	if pkg.Slug == "" {
		return fmt.Errorf("%w: no slug and no title to derive one from", domain.ErrValidation)
	}
	if pkg.Destination.Key == "" {
		return fmt.Errorf("%w: destination %q yields no grouping key", domain.ErrValidation, raw.Destination)
	}
	return nil
}

// migrateUp applies pending schema migrations via goose.
func migrateUp(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
