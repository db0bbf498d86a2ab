// Package repo contains the Postgres access layer for the catalog.
// Only SQL and row mapping live here; classification and aggregation are the
// catalog package's job and never touch the database.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripdeck/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Repos accept it instead of a concrete pool so integration tests
// can pass a transaction that rolls back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PackageRepo defines the persistence operations for raw package records.
// The service layer depends on this interface, never the Postgres type.
type PackageRepo interface {
	// List returns raw package rows newest-first, honoring the limit and
	// status filter in params.
	List(ctx context.Context, params domain.ListParams) ([]domain.RawPackage, error)

	// GetBySlug retrieves one raw package row by its slug.
	// Returns domain.ErrNotFound if no row matches.
	GetBySlug(ctx context.Context, slug string) (domain.RawPackage, error)

	// Create inserts a raw package row and returns it with the DB-generated
	// id and created_at populated.
	Create(ctx context.Context, raw domain.RawPackage) (domain.RawPackage, error)
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

const packageColumns = `
	id, slug, title, destination, description, duration_days, price_from,
	rating, reviews_count, highlights, inclusions, exclusions, images,
	cover_image, itinerary, category, featured, status, created_at`

// List returns raw package rows ordered by created_at descending.
func (r *pgPackageRepo) List(ctx context.Context, params domain.ListParams) ([]domain.RawPackage, error) {
	q := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE (@status = '' OR status = @status)
		ORDER BY created_at DESC`
	args := pgx.NamedArgs{"status": params.Status}
	if params.Limit > 0 {
		q += `
		LIMIT @limit`
		args["limit"] = params.Limit
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.RawPackage
	for rows.Next() {
		raw, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackageRepo.List: scan: %w", err)
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackageRepo.List: rows: %w", err)
	}

	return out, nil
}

// GetBySlug retrieves one raw package row by slug.
func (r *pgPackageRepo) GetBySlug(ctx context.Context, slug string) (domain.RawPackage, error) {
	q := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE slug = @slug`

	raw, err := scanPackage(r.db.QueryRow(ctx, q, pgx.NamedArgs{"slug": slug}))
	if err != nil {
		return domain.RawPackage{}, fmt.Errorf("repo.PackageRepo.GetBySlug: %w", err)
	}
	return raw, nil
}

// Create inserts a raw package row and returns the persisted record.
func (r *pgPackageRepo) Create(ctx context.Context, raw domain.RawPackage) (domain.RawPackage, error) {
	itinerary, err := json.Marshal(raw.Itinerary)
	if err != nil {
		return domain.RawPackage{}, fmt.Errorf("repo.PackageRepo.Create: marshal itinerary: %w", err)
	}

	q := `
		INSERT INTO packages (
			slug, title, destination, description, duration_days, price_from,
			rating, reviews_count, highlights, inclusions, exclusions, images,
			cover_image, itinerary, category, featured, status
		) VALUES (
			@slug, @title, @destination, @description, @duration_days, @price_from,
			@rating, @reviews_count, @highlights, @inclusions, @exclusions, @images,
			@cover_image, @itinerary, @category, @featured, @status
		)
		RETURNING ` + packageColumns

	args := pgx.NamedArgs{
		"slug":          raw.Slug,
		"title":         raw.Title,
		"destination":   raw.Destination,
		"description":   raw.Description,
		"duration_days": raw.DurationDays,
		"price_from":    raw.PriceFrom,
		"rating":        raw.Rating,
		"reviews_count": raw.ReviewsCount,
		"highlights":    raw.Highlights,
		"inclusions":    raw.Inclusions,
		"exclusions":    raw.Exclusions,
		"images":        raw.Images,
		"cover_image":   raw.CoverImage,
		"itinerary":     itinerary,
		"category":      raw.Category,
		"featured":      raw.Featured,
		"status":        raw.Status,
	}

	created, err := scanPackage(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RawPackage{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}
	return created, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows so scanPackage serves
// QueryRow and Query alike.
type scanner interface {
	Scan(dest ...any) error
}

// scanPackage maps one database row into a domain.RawPackage, converting the
// UUID primary key and unpacking the jsonb itinerary.
func scanPackage(s scanner) (domain.RawPackage, error) {
	var (
		raw       domain.RawPackage
		id        pgtype.UUID
		itinerary []byte
	)

	err := s.Scan(
		&id, &raw.Slug, &raw.Title, &raw.Destination, &raw.Description,
		&raw.DurationDays, &raw.PriceFrom, &raw.Rating, &raw.ReviewsCount,
		&raw.Highlights, &raw.Inclusions, &raw.Exclusions, &raw.Images,
		&raw.CoverImage, &itinerary, &raw.Category, &raw.Featured,
		&raw.Status, &raw.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RawPackage{}, domain.ErrNotFound
		}
		return domain.RawPackage{}, err
	}

	raw.ID = uuid.UUID(id.Bytes).String()
	if len(itinerary) > 0 {
		if err := json.Unmarshal(itinerary, &raw.Itinerary); err != nil {
			return domain.RawPackage{}, fmt.Errorf("unmarshal itinerary: %w", err)
		}
	}

	return raw, nil
}
