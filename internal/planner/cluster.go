package planner

import (
	"fmt"

	"github.com/gloriatan/ANI/internal/domain"
)

// DayBucket is one day's worth of locations sharing an area label.
type DayBucket struct {
	Area      string
	Locations []domain.Location
}

// ClusterByArea groups locations by their area tag and returns one bucket per
// day, in the order areas first appear in the input. Buckets larger than
// maxPerDay are split into fixed-size chunks labelled "Area (Part N)",
// preserving the original order, so an oversized area becomes a contiguous
// multi-day sub-plan rather than being merged with a neighbouring area.
//
// Minimizing cross-area travel matters more than balancing day length.
func ClusterByArea(locs []domain.Location, maxPerDay int) []DayBucket {
	if len(locs) == 0 {
		return nil
	}

	byArea := map[string][]domain.Location{}
	var areaOrder []string
	for _, loc := range locs {
		if _, seen := byArea[loc.Area]; !seen {
			areaOrder = append(areaOrder, loc.Area)
		}
		byArea[loc.Area] = append(byArea[loc.Area], loc)
	}

	var buckets []DayBucket
	for _, area := range areaOrder {
		group := byArea[area]
		if len(group) <= maxPerDay {
			buckets = append(buckets, DayBucket{Area: area, Locations: group})
			continue
		}
		for i := 0; i < len(group); i += maxPerDay {
			end := i + maxPerDay
			if end > len(group) {
				end = len(group)
			}
			buckets = append(buckets, DayBucket{
				Area:      fmt.Sprintf("%s (Part %d)", area, i/maxPerDay+1),
				Locations: group[i:end],
			})
		}
	}
	return buckets
}
