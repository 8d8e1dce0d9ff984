// Package planner contains the itinerary-construction logic: style filtering,
// area clustering, day-pass cost optimization, and itinerary assembly.
// Everything here is a pure computation over in-memory slices — no I/O, no
// shared mutable state — so a single Planner is safe for concurrent requests.
package planner

import "github.com/gloriatan/ANI/internal/domain"

// FilterByStyle returns the locations admitted by the style's predicate,
// preserving input order. Budget keeps free locations, Luxury keeps paid
// ones, Balanced keeps everything. An empty result is not an error; the
// assembler reports it as hasContent=false.
func FilterByStyle(locs []domain.Location, style domain.Style) []domain.Location {
	if style == domain.StyleBalanced {
		return locs
	}
	filtered := make([]domain.Location, 0, len(locs))
	for _, loc := range locs {
		if style.Admits(loc) {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}
