package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetAnimeByCity handles GET /api/anime/{city}.
// It lists every anime with at least one pilgrimage site in the city.
func (s *Server) GetAnimeByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if !s.catalog.HasCity(city) {
		writeError(w, r, http.StatusNotFound, "not_found", "unknown city "+city)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"city":    city,
		"anime":   s.catalog.AnimeForCity(city),
	})
}
