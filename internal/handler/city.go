package handler

import "net/http"

// GetCities handles GET /api/cities.
// It returns every city with at least one pilgrimage location, each with its
// decorative icon, in the catalog's preferred display order.
func (s *Server) GetCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"cities":  s.catalog.Cities(),
	})
}
