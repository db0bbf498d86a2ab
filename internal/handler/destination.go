package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listDestinations handles GET /api/v1/destinations.
// Aggregates are recomputed per request from the package source; the ?limit=
// and ?status= parameters bound the packages fed into the fold, not the
// number of destinations returned.
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := s.catalog.Destinations(r.Context(), listParamsFromQuery(r))
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: dests})
}

// getDestination handles GET /api/v1/destinations/{key}.
func (s *Server) getDestination(w http.ResponseWriter, r *http.Request) {
	dest, err := s.catalog.DestinationByKey(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: dest})
}
