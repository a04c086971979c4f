// Package planner contains the pure core of the itinerary builder: date-range
// expansion, day reconciliation, per-day activity operations, and budget
// aggregation. Nothing here holds state or performs I/O; every function is a
// deterministic transformation of its inputs, which is what makes the
// date-edit edge cases unit-testable without any HTTP or session harness.
package planner

import (
	"time"

	"github.com/jturpin/tripbook/internal/domain"
)

// ExpandRange returns one calendar date per day from start to end inclusive,
// ascending, normalized to midnight UTC. Crossing month and year boundaries
// is handled by calendar arithmetic (AddDate), not by adding 24h durations.
//
// An inverted range (end before start) yields an empty sequence rather than
// an error: callers are expected to reject inverted ranges before reaching
// the core (see service.ItineraryService), so this is only a defensive floor.
func ExpandRange(start, end time.Time) []time.Time {
	start = domain.Date(start)
	end = domain.Date(end)
	if end.Before(start) {
		return nil
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
