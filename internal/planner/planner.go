package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gloriatan/ANI/internal/domain"
)

// DefaultMaxSightsPerDay caps how many locations a single day-bucket may hold
// before the area is split across days.
const DefaultMaxSightsPerDay = 5

// CatalogReader defines the catalog operations the planner depends on.
// Defining the interface here, in the consumer package, lets planner tests
// inject a fixture catalog without touching loaders or a database.
type CatalogReader interface {
	HasCity(city string) bool
	LocationsFor(city string, animeNames []string) []domain.Location
	DayPassPrice(city string) (price int, ok bool)
}

// Request carries one itinerary-generation call's inputs.
type Request struct {
	City  string
	Anime []string
	Style string

	// MaxSightsPerDay overrides the planner default when > 0.
	MaxSightsPerDay int

	// IncludeAccommodation toggles lodging estimates. The HTTP layer
	// defaults it to true when the client omits the field.
	IncludeAccommodation bool
}

// Planner generates itineraries against a read-only catalog snapshot.
// It holds no per-request state and is safe for concurrent use.
type Planner struct {
	catalog         CatalogReader
	maxSightsPerDay int
	log             *slog.Logger
}

// Option customizes a Planner at construction.
type Option func(*Planner)

// WithMaxSightsPerDay sets the default day-size threshold. Values < 1 are ignored.
func WithMaxSightsPerDay(n int) Option {
	return func(p *Planner) {
		if n >= 1 {
			p.maxSightsPerDay = n
		}
	}
}

// WithLogger sets the logger used for planning diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// New constructs a Planner over the given catalog.
func New(catalog CatalogReader, opts ...Option) *Planner {
	p := &Planner{
		catalog:         catalog,
		maxSightsPerDay: DefaultMaxSightsPerDay,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate runs the full pipeline: validate → select → filter → cluster →
// price → package. Malformed input (unknown city or style, empty anime
// selection) is an error; a style filter that admits nothing is not — it
// yields a hasContent=false itinerary with zero days and zero totals.
func (p *Planner) Generate(ctx context.Context, req Request) (domain.Itinerary, error) {
	style, err := domain.ParseStyle(req.Style)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Generate: %w", err)
	}
	if len(req.Anime) == 0 {
		return domain.Itinerary{}, fmt.Errorf("planner.Generate: %w: at least one anime must be selected", domain.ErrValidation)
	}
	if !p.catalog.HasCity(req.City) {
		return domain.Itinerary{}, fmt.Errorf("planner.Generate: %w: unknown city %q", domain.ErrNotFound, req.City)
	}
	if req.MaxSightsPerDay < 0 {
		return domain.Itinerary{}, fmt.Errorf("planner.Generate: %w: max_sights_per_day must be positive", domain.ErrValidation)
	}

	maxPerDay := p.maxSightsPerDay
	if req.MaxSightsPerDay > 0 {
		maxPerDay = req.MaxSightsPerDay
	}

	candidates := dedupe(p.catalog.LocationsFor(req.City, req.Anime))
	filtered := FilterByStyle(candidates, style)

	it := domain.Itinerary{
		ID:            uuid.New(),
		City:          req.City,
		Style:         style,
		Days:          []domain.DayPlan{},
		LocationTypes: map[string]int{},
	}

	if len(filtered) == 0 {
		it.Message = fmt.Sprintf("Based on your '%s' travel style, no suitable locations were found.", style)
		p.log.InfoContext(ctx, "itinerary empty",
			"city", req.City, "style", string(style), "candidates", len(candidates))
		return it, nil
	}

	buckets := ClusterByArea(filtered, maxPerDay)

	price, ok := p.catalog.DayPassPrice(req.City)
	it.HasContent = true
	it.Days = buildDays(buckets, costOptions{
		style:                style,
		dayPassPrice:         price,
		hasDayPass:           ok,
		includeAccommodation: req.IncludeAccommodation,
	})
	sumTotals(&it)

	p.log.InfoContext(ctx, "itinerary generated",
		"city", req.City, "style", string(style),
		"days", len(it.Days), "locations", len(filtered), "total_cost", it.TotalCost)
	return it, nil
}

// dedupe keeps the first occurrence when the same physical location appears
// under multiple selected anime. Identity is name + city, case-insensitive
// on city to match catalog lookup semantics.
func dedupe(locs []domain.Location) []domain.Location {
	seen := make(map[string]bool, len(locs))
	out := make([]domain.Location, 0, len(locs))
	for _, loc := range locs {
		key := loc.Name + "|" + strings.ToLower(loc.City)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, loc)
	}
	return out
}
