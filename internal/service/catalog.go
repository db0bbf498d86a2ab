// Package service contains the business operations of the catalog API.
// Services orchestrate a raw package source and the catalog engine; no SQL
// or HTTP lives here.
package service

import (
	"context"
	"fmt"

	"github.com/tripdeck/backend/internal/catalog"
	"github.com/tripdeck/backend/internal/domain"
)

// PackageSource supplies raw package records. Both the Postgres repo and the
// upstream HTTP client satisfy it, so the service is storage-agnostic.
type PackageSource interface {
	List(ctx context.Context, params domain.ListParams) ([]domain.RawPackage, error)
}

// CatalogService runs the classification and aggregation engine over a raw
// package source. Every call fetches and recomputes from scratch: the engine
// aggregates are a pure function of the source data, and caching is the
// caller's concern.
type CatalogService struct {
	source     PackageSource
	normalizer *catalog.Normalizer
	aggregator *catalog.Aggregator
}

// NewCatalogService constructs a CatalogService. Nil normalizer or
// aggregator fall back to the production defaults.
func NewCatalogService(source PackageSource, n *catalog.Normalizer, a *catalog.Aggregator) *CatalogService {
	if n == nil {
		n = catalog.NewDefaultNormalizer()
	}
	if a == nil {
		a = catalog.NewAggregator(nil)
	}
	return &CatalogService{source: source, normalizer: n, aggregator: a}
}

// Packages returns all normalized packages matching params, in source order.
func (s *CatalogService) Packages(ctx context.Context, params domain.ListParams) ([]domain.Package, error) {
	raws, err := s.source.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Packages: %w", err)
	}

	pkgs := make([]domain.Package, len(raws))
	for i, raw := range raws {
		pkgs[i] = s.normalizer.Normalize(raw)
	}
	return pkgs, nil
}

// PackageBySlug returns one normalized package.
// Returns domain.ErrNotFound when no package carries the slug.
func (s *CatalogService) PackageBySlug(ctx context.Context, slug string) (domain.Package, error) {
	pkgs, err := s.Packages(ctx, domain.ListParams{})
	if err != nil {
		return domain.Package{}, fmt.Errorf("service.CatalogService.PackageBySlug: %w", err)
	}
	for _, pkg := range pkgs {
		if pkg.Slug == slug {
			return pkg, nil
		}
	}
	return domain.Package{}, fmt.Errorf("service.CatalogService.PackageBySlug: %w", domain.ErrNotFound)
}

// Destinations aggregates all packages matching params into per-destination
// records, in first-seen order.
func (s *CatalogService) Destinations(ctx context.Context, params domain.ListParams) ([]domain.Destination, error) {
	pkgs, err := s.Packages(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Destinations: %w", err)
	}
	return s.aggregator.Aggregate(pkgs), nil
}

// DestinationByKey returns one aggregated destination by its grouping key.
// Returns domain.ErrNotFound when no package maps to the key.
func (s *CatalogService) DestinationByKey(ctx context.Context, key string) (domain.Destination, error) {
	dests, err := s.Destinations(ctx, domain.ListParams{})
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.DestinationByKey: %w", err)
	}
	for _, d := range dests {
		if d.Key == key {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("service.CatalogService.DestinationByKey: %w", domain.ErrNotFound)
}
