package domain

import "fmt"

// Style is the user-selected travel-budget tier. It controls which locations
// are admitted into an itinerary and the daily food/lodging estimates.
type Style string

const (
	// StyleBudget admits only free locations (EntryFee == 0).
	StyleBudget Style = "budget"
	// StyleBalanced admits every location.
	StyleBalanced Style = "balanced"
	// StyleLuxury admits only paid locations (EntryFee > 0).
	StyleLuxury Style = "luxury"
)

// Daily cost estimates in yen per style tier.
var (
	dailyFoodEstimate = map[Style]int{
		StyleBudget:   2000,
		StyleBalanced: 3500,
		StyleLuxury:   6000,
	}
	dailyLodgingEstimate = map[Style]int{
		StyleBudget:   5000,
		StyleBalanced: 10000,
		StyleLuxury:   20000,
	}
)

// ParseStyle converts a request token into a Style.
// Unknown tokens are a validation error, never silently defaulted.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleBudget, StyleBalanced, StyleLuxury:
		return Style(s), nil
	}
	return "", fmt.Errorf("%w: unknown travel style %q", ErrValidation, s)
}

// Admits reports whether a location qualifies under this style's
// admission predicate.
func (s Style) Admits(loc Location) bool {
	switch s {
	case StyleBudget:
		return loc.EntryFee == 0
	case StyleLuxury:
		return loc.EntryFee > 0
	default:
		return true
	}
}

// DailyFoodCost returns the per-day food estimate for the style, in yen.
func (s Style) DailyFoodCost() int { return dailyFoodEstimate[s] }

// DailyLodgingCost returns the per-night lodging estimate for the style, in yen.
func (s Style) DailyLodgingCost() int { return dailyLodgingEstimate[s] }
