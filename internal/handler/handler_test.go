package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/backend/internal/domain"
	"github.com/tripdeck/backend/internal/handler"
)

// mockCatalog is a hand-written test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalog struct {
	packages         func(ctx context.Context, params domain.ListParams) ([]domain.Package, error)
	packageBySlug    func(ctx context.Context, slug string) (domain.Package, error)
	destinations     func(ctx context.Context, params domain.ListParams) ([]domain.Destination, error)
	destinationByKey func(ctx context.Context, key string) (domain.Destination, error)
}

func (m *mockCatalog) Packages(ctx context.Context, p domain.ListParams) ([]domain.Package, error) {
	return m.packages(ctx, p)
}
func (m *mockCatalog) PackageBySlug(ctx context.Context, slug string) (domain.Package, error) {
	return m.packageBySlug(ctx, slug)
}
func (m *mockCatalog) Destinations(ctx context.Context, p domain.ListParams) ([]domain.Destination, error) {
	return m.destinations(ctx, p)
}
func (m *mockCatalog) DestinationByKey(ctx context.Context, key string) (domain.Destination, error) {
	return m.destinationByKey(ctx, key)
}

// compile-time check: mockCatalog must satisfy handler.CatalogServicer.
var _ handler.CatalogServicer = (*mockCatalog)(nil)

// do runs one request through the full route table, as main.go mounts it.
func do(t *testing.T, svc handler.CatalogServicer, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	handler.NewServer(svc).Routes().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func packageFixture() domain.Package {
	return domain.Package{
		ID:    "pkg-1",
		Slug:  "goa-beach-escape",
		Title: "Goa Beach Escape",
		Destination: domain.DestinationIdentity{
			Name: "Goa", Country: "India", Type: domain.DestinationDomestic,
			Region: "India", NameSlug: "goa", CountrySlug: "india", Key: "goa",
		},
		PriceFrom:  15999,
		Activities: []string{"Beach"},
	}
}

// ---- GET /healthz ------------------------------------------------------------

func TestGetHealth_200(t *testing.T) {
	rec := do(t, &mockCatalog{}, http.MethodGet, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// ---- GET /api/v1/packages ------------------------------------------------------

func TestListPackages_200(t *testing.T) {
	svc := &mockCatalog{
		packages: func(_ context.Context, _ domain.ListParams) ([]domain.Package, error) {
			return []domain.Package{packageFixture()}, nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "goa-beach-escape", first["slug"])
}

func TestListPackages_queryParams(t *testing.T) {
	var got domain.ListParams
	svc := &mockCatalog{
		packages: func(_ context.Context, p domain.ListParams) ([]domain.Package, error) {
			got = p
			return nil, nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages?limit=10&status=active")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, "active", got.Status)
}

// TestListPackages_malformedLimitIgnored verifies a junk ?limit= falls back
// to defaults instead of failing the request.
func TestListPackages_malformedLimitIgnored(t *testing.T) {
	var got domain.ListParams
	svc := &mockCatalog{
		packages: func(_ context.Context, p domain.ListParams) ([]domain.Package, error) {
			got = p
			return nil, nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages?limit=banana")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, got.Limit)
}

func TestListPackages_500(t *testing.T) {
	svc := &mockCatalog{
		packages: func(_ context.Context, _ domain.ListParams) ([]domain.Package, error) {
			return nil, errors.New("source down")
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	detail := body["error"].(map[string]any)
	assert.Equal(t, "internal", detail["code"])
	assert.NotContains(t, detail["message"], "source down", "internal details must not leak")
}

// ---- GET /api/v1/packages/{slug} ---------------------------------------------

func TestGetPackage_200(t *testing.T) {
	svc := &mockCatalog{
		packageBySlug: func(_ context.Context, slug string) (domain.Package, error) {
			require.Equal(t, "goa-beach-escape", slug)
			return packageFixture(), nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages/goa-beach-escape")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPackage_404(t *testing.T) {
	svc := &mockCatalog{
		packageBySlug: func(_ context.Context, _ string) (domain.Package, error) {
			return domain.Package{}, domain.ErrNotFound
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/packages/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	detail := body["error"].(map[string]any)
	assert.Equal(t, "not_found", detail["code"])
	assert.Equal(t, "package not found", detail["message"])
}

// ---- GET /api/v1/destinations --------------------------------------------------

func TestListDestinations_200(t *testing.T) {
	svc := &mockCatalog{
		destinations: func(_ context.Context, _ domain.ListParams) ([]domain.Destination, error) {
			return []domain.Destination{{
				DestinationIdentity: domain.DestinationIdentity{Key: "goa", Name: "Goa"},
				PackagesCount:       2,
				DurationLabel:       "3-5D",
			}}, nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/destinations")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "goa", first["key"])
	assert.EqualValues(t, 2, first["packages_count"])
	assert.Equal(t, "3-5D", first["duration_label"])
}

// ---- GET /api/v1/destinations/{key} --------------------------------------------

func TestGetDestination_200(t *testing.T) {
	svc := &mockCatalog{
		destinationByKey: func(_ context.Context, key string) (domain.Destination, error) {
			require.Equal(t, "goa", key)
			return domain.Destination{
				DestinationIdentity: domain.DestinationIdentity{Key: "goa"},
			}, nil
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/destinations/goa")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDestination_404(t *testing.T) {
	svc := &mockCatalog{
		destinationByKey: func(_ context.Context, _ string) (domain.Destination, error) {
			return domain.Destination{}, domain.ErrNotFound
		},
	}

	rec := do(t, svc, http.MethodGet, "/api/v1/destinations/atlantis")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	detail := body["error"].(map[string]any)
	assert.Equal(t, "destination not found", detail["message"])
}
