package handler

import "net/http"

// getHealth handles GET /healthz.
// It returns 200 with {"status":"ok"} while the server is running.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
