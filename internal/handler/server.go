// Package handler implements the HTTP handlers for the catalog API.
// All handlers are methods on Server; they decode the request, call the
// service, and encode a JSON envelope. Handlers are split into
// domain-specific files but share one Server struct for dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripdeck/backend/internal/domain"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// The interface lives in the consumer package so handler tests can inject a
// mock without touching the service or any package source.
type CatalogServicer interface {
	Packages(ctx context.Context, params domain.ListParams) ([]domain.Package, error)
	PackageBySlug(ctx context.Context, slug string) (domain.Package, error)
	Destinations(ctx context.Context, params domain.ListParams) ([]domain.Destination, error)
	DestinationByKey(ctx context.Context, key string) (domain.Destination, error)
}

// Server holds the handler dependencies and registers the API routes.
type Server struct {
	catalog CatalogServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer) *Server {
	return &Server{catalog: catalog}
}

// Routes returns the router with every API endpoint registered.
// Mount it on the application router in main.go.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.getHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/packages", s.listPackages)
		r.Get("/packages/{slug}", s.getPackage)
		r.Get("/destinations", s.listDestinations)
		r.Get("/destinations/{key}", s.getDestination)
	})
	return r
}

// dataEnvelope wraps every successful response body.
type dataEnvelope struct {
	Data any `json:"data"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// listParamsFromQuery builds domain.ListParams from ?limit= and ?status=.
// A malformed limit is ignored rather than rejected: listing surfaces
// degrade to defaults instead of failing.
func listParamsFromQuery(r *http.Request) domain.ListParams {
	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = &n
		}
	}
	return domain.NewListParams(limit, r.URL.Query().Get("status"))
}
