// Package handler implements the HTTP handlers for the pilgrimage planner API.
// All handlers are methods on Server. Methods are split into endpoint-specific
// files (health.go, city.go, anime.go, itinerary.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/gloriatan/ANI/internal/catalog"
	"github.com/gloriatan/ANI/internal/domain"
	"github.com/gloriatan/ANI/internal/planner"
)

// ItineraryPlanner defines the planning operation the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without building a real catalog or planner.
type ItineraryPlanner interface {
	Generate(ctx context.Context, req planner.Request) (domain.Itinerary, error)
}

// CatalogReader defines the read-only catalog queries the listing endpoints use.
type CatalogReader interface {
	Cities() []catalog.CityInfo
	AnimeForCity(city string) []catalog.AnimeInfo
	HasCity(city string) bool
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	planner ItineraryPlanner
	catalog CatalogReader
}

// NewServer constructs the Server with all its dependencies.
func NewServer(p ItineraryPlanner, c CatalogReader) *Server {
	return &Server{planner: p, catalog: c}
}

// Routes returns the API route tree. Middleware is applied by the caller
// (main.go) so tests can exercise routes without the full stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/health", s.GetHealth)
	r.Get("/api/cities", s.GetCities)
	r.Get("/api/anime/{city}", s.GetAnimeByCity)
	r.Post("/api/generate-itinerary", s.GenerateItinerary)
	return r
}
