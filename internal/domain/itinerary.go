package domain

import "github.com/google/uuid"

// DayPlan is one day of an itinerary: the locations assigned to that day
// plus the day's cost breakdown. All amounts are yen.
type DayPlan struct {
	// Day is the 1-indexed position within the itinerary.
	Day int `json:"day"`

	// Area is the cluster label, e.g. "Shinjuku" or "Shinjuku (Part 2)"
	// when an oversized area was split across days.
	Area string `json:"area"`

	Locations []Location `json:"locations"`

	EntryFee          int `json:"entryFee"`
	TransportFee      int `json:"transportFee"`
	FoodCost          int `json:"foodCost"`
	AccommodationCost int `json:"accommodationCost"`
	TotalCost         int `json:"totalCost"`

	// PassSavings is rawTransport − dayPassPrice when a day pass beat the
	// summed per-ride fares, 0 otherwise.
	PassSavings int `json:"passSavings,omitempty"`

	// OptimizationNote is a human-readable note describing the day-pass
	// saving, empty when no pass was applied.
	OptimizationNote string `json:"optimizationNote,omitempty"`
}

// Itinerary is a complete multi-day plan for one city. Built fresh per
// request, never persisted.
type Itinerary struct {
	// ID is a per-generation identifier for client-side reference.
	ID    uuid.UUID `json:"id"`
	City  string    `json:"city"`
	Style Style     `json:"style"`

	// HasContent is false when the style filter admitted zero locations.
	// An empty result is a signalled outcome, not an error.
	HasContent bool   `json:"hasContent"`
	Message    string `json:"message,omitempty"`

	Days []DayPlan `json:"days"`

	TotalCost              int `json:"totalCost"`
	TotalEntryFee          int `json:"totalEntryFee"`
	TotalTransportFee      int `json:"totalTransportFee"`
	TotalFoodCost          int `json:"totalFoodCost"`
	TotalAccommodationCost int `json:"totalAccommodationCost"`

	// LocationTypes counts occurrences of each location type across all
	// selected locations (itinerary-wide, not per day).
	LocationTypes map[string]int `json:"locationTypes"`
}
