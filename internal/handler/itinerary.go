package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gloriatan/ANI/internal/domain"
	"github.com/gloriatan/ANI/internal/planner"
)

// generateItineraryRequest is the POST /api/generate-itinerary body.
// Optional fields are pointers so "absent" and "zero" stay distinguishable.
type generateItineraryRequest struct {
	City  string   `json:"city"`
	Anime []string `json:"anime"`
	Style string   `json:"style"`

	MaxSightsPerDay      *int  `json:"max_sights_per_day,omitempty"`
	IncludeAccommodation *bool `json:"include_accommodation,omitempty"`
}

// GenerateItinerary handles POST /api/generate-itinerary.
// A filter that admits no locations is a successful response with
// hasContent=false, not an error; only malformed input is rejected.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var body generateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", "invalid JSON body")
		return
	}
	if body.City == "" || body.Style == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error",
			"missing required fields: city, anime, style")
		return
	}

	req := planner.Request{
		City:                 body.City,
		Anime:                body.Anime,
		Style:                body.Style,
		IncludeAccommodation: true,
	}
	if body.MaxSightsPerDay != nil {
		req.MaxSightsPerDay = *body.MaxSightsPerDay
	}
	if body.IncludeAccommodation != nil {
		req.IncludeAccommodation = *body.IncludeAccommodation
	}

	it, err := s.planner.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "not_found", unwrapMessage(err))
		case errors.Is(err, domain.ErrValidation):
			writeError(w, r, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
		default:
			writeError(w, r, http.StatusInternalServerError, "internal_error", "failed to generate itinerary")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"itinerary": it,
	})
}
