package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listPackages handles GET /api/v1/packages.
// Supports ?limit= and ?status= query parameters.
func (s *Server) listPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := s.catalog.Packages(r.Context(), listParamsFromQuery(r))
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: pkgs})
}

// getPackage handles GET /api/v1/packages/{slug}.
func (s *Server) getPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.catalog.PackageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err, "package not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: pkg})
}
