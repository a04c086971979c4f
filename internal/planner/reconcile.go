package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
)

// ReconcileDays rebuilds an itinerary's day list for a new date range.
//
// For every date in [start, end] it reuses the existing Day record with that
// date unchanged (same ID, same activities) and creates a fresh empty Day
// (via newID) for dates not previously in range. Days whose dates fall
// outside the new range are dropped along with their activities. The result
// is in ascending date order.
//
// Reusing existing Day records unchanged is the correctness property the
// whole edit flow hangs on: editing a trip's dates must never drop or
// duplicate activities on days that remain in range. Reconciling against the
// itinerary's current range is therefore a no-op.
//
// On first creation existing is nil, so every day comes out fresh.
func ReconcileDays(existing []domain.Day, start, end time.Time, newID func() uuid.UUID) []domain.Day {
	byDate := make(map[string]domain.Day, len(existing))
	for _, d := range existing {
		byDate[domain.DateKey(d.Date)] = d
	}

	dates := ExpandRange(start, end)
	days := make([]domain.Day, 0, len(dates))
	for _, date := range dates {
		if day, ok := byDate[domain.DateKey(date)]; ok {
			days = append(days, day)
			continue
		}
		days = append(days, domain.Day{
			ID:         newID(),
			Date:       date,
			Activities: []domain.Activity{},
		})
	}
	return days
}
