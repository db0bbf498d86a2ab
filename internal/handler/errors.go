package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tripdeck/backend/internal/domain"
)

// errorResponse is the JSON error envelope every non-2xx response carries.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps service errors onto HTTP responses: ErrNotFound → 404,
// ErrValidation → 422, anything else → an opaque 500 (the real error goes to
// the log, never the client). The caller supplies the not-found message
// because the handler knows what was being looked up.
func writeError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: notFoundMessage},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: err.Error()},
		})
	default:
		slog.Error("handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal", Message: "internal server error"},
		})
	}
}
