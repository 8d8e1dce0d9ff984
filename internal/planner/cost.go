package planner

import (
	"fmt"

	"github.com/gloriatan/ANI/internal/domain"
)

// costOptions carries the inputs the cost simulation needs beyond the
// day-buckets themselves.
type costOptions struct {
	style domain.Style

	// dayPassPrice is the city's flat daily transit pass price;
	// hasDayPass is false when the city sells no pass.
	dayPassPrice int
	hasDayPass   bool

	includeAccommodation bool
}

// buildDays turns ordered day-buckets into priced DayPlans.
//
// Per day: entry fees and per-ride transport fares are summed; when a day
// pass is cheaper than the summed fares the pass price is charged instead and
// the saving recorded; food is the style's daily estimate; lodging is the
// style's nightly estimate except on the final day, when no night remains to
// pay for. All arithmetic is exact integer arithmetic in yen.
func buildDays(buckets []DayBucket, opts costOptions) []domain.DayPlan {
	days := make([]domain.DayPlan, 0, len(buckets))
	for i, bucket := range buckets {
		day := domain.DayPlan{
			Day:       i + 1,
			Area:      bucket.Area,
			Locations: bucket.Locations,
			FoodCost:  opts.style.DailyFoodCost(),
		}

		rawTransport := 0
		for _, loc := range bucket.Locations {
			day.EntryFee += loc.EntryFee
			rawTransport += loc.TransportCost
		}

		day.TransportFee = rawTransport
		if opts.hasDayPass && opts.dayPassPrice < rawTransport {
			day.TransportFee = opts.dayPassPrice
			day.PassSavings = rawTransport - opts.dayPassPrice
			day.OptimizationNote = fmt.Sprintf("Optimized with Day Pass (saved ¥%d)", day.PassSavings)
		}

		lastDay := i == len(buckets)-1
		if opts.includeAccommodation && !lastDay {
			day.AccommodationCost = opts.style.DailyLodgingCost()
		}

		day.TotalCost = day.EntryFee + day.TransportFee + day.FoodCost + day.AccommodationCost
		days = append(days, day)
	}
	return days
}

// sumTotals rolls per-day costs up into the itinerary-level totals and counts
// the location-type histogram across all selected locations.
func sumTotals(it *domain.Itinerary) {
	it.LocationTypes = map[string]int{}
	for _, day := range it.Days {
		it.TotalCost += day.TotalCost
		it.TotalEntryFee += day.EntryFee
		it.TotalTransportFee += day.TransportFee
		it.TotalFoodCost += day.FoodCost
		it.TotalAccommodationCost += day.AccommodationCost

		for _, loc := range day.Locations {
			t := loc.LocationType
			if t == "" {
				t = "Other"
			}
			it.LocationTypes[t]++
		}
	}
}
