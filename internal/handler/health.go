package handler

import "net/http"

// GetHealth handles GET /api/health.
// It returns HTTP 200 when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"status":  "ok",
		"message": "Anime Pilgrimage Planner API is running",
	})
}
