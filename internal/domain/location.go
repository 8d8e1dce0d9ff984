// Package domain contains the core data types for the anime pilgrimage planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (catalog, planner, handler).
package domain

// Location represents a single real-world pilgrimage site featured in an anime.
// Records are loaded once from the catalog at process start and are read-only
// thereafter; all numeric fields are validated (non-negative, defaulted to 0)
// at the loading boundary, never at use sites.
type Location struct {
	// Name is the site name, typically bilingual ("須賀神社 / Suga Shrine").
	Name string `json:"name"`
	City string `json:"city"`

	// Area is a free-text neighbourhood label ("Shinjuku", "Arashiyama").
	// It drives day clustering only — it is never geocoded.
	Area string `json:"area"`

	// TransportCost is the fare of a single ride to reach the site, in yen.
	TransportCost int `json:"transport_cost"`

	// EntryFee is the admission price in yen; 0 means free.
	EntryFee int `json:"entry_fee"`

	// LocationType is a categorical tag ("Shrine", "Cafe", "Scenery").
	LocationType string `json:"location_type"`

	Description string `json:"description,omitempty"`

	// SourceAnime identifies which selected anime contributed this location.
	// Populated by the catalog when answering a selection query.
	SourceAnime   string `json:"source_anime,omitempty"`
	SourceAnimeEN string `json:"source_anime_en,omitempty"`
}
