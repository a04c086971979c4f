// Package domain contains the core data types for the Tripbook application.
// This package has zero dependencies beyond the UUID type and is imported by
// every other internal package (planner, session, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and lookup format for calendar dates.
const DateLayout = "2006-01-02"

// DateKey formats a calendar date for map lookups and JSON output.
// Two Days belong to the same calendar date exactly when their keys are equal.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Date truncates a timestamp to its calendar date at midnight UTC.
// All Day and Itinerary dates are normalized through this before storage so
// that date equality never depends on the time-of-day or zone of the input.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Day is one calendar date within an itinerary.
// Dates are unique within an itinerary; activities are stored in insertion
// order (display order is a read-time projection, see planner.SortedActivities).
type Day struct {
	ID         uuid.UUID  `json:"id"`
	Date       time.Time  `json:"date"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

// Itinerary is a single trip plan: metadata plus an ordered list of Days.
// Days always span exactly the inclusive date range [StartDate, EndDate],
// ascending, with no gaps and no duplicates. That invariant is re-derived by
// planner.ReconcileDays whenever the range changes.
type Itinerary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"` // inclusive; never before StartDate
	Days        []Day     `json:"days"`
	TotalBudget *float64  `json:"total_budget,omitempty"` // nil when no budget declared
	Currency    string    `json:"currency,omitempty"`
	Travelers   int       `json:"travelers,omitempty"` // defaults to 1 at the service layer
	Notes       string    `json:"notes,omitempty"`
}

// BudgetSummary is the read model for the budget view: the declared budget
// next to the computed spend across every activity in the itinerary.
type BudgetSummary struct {
	TotalBudget *float64 `json:"total_budget,omitempty"` // nil when no budget declared
	TotalSpent  float64  `json:"total_spent"`
	Currency    string   `json:"currency,omitempty"`
}
