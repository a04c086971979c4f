package planner

import "github.com/jturpin/tripbook/internal/domain"

// TotalSpent sums the cost of every activity across every day of the
// itinerary. An absent cost counts as zero (the activity is free). The sum
// is recomputed on each call, never cached, so it can't drift from the
// activities it is derived from.
func TotalSpent(it domain.Itinerary) float64 {
	var total float64
	for _, day := range it.Days {
		for _, a := range day.Activities {
			if a.Cost != nil {
				total += *a.Cost
			}
		}
	}
	return total
}
