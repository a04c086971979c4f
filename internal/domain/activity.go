package domain

import "github.com/google/uuid"

// ActivityType classifies what kind of scheduled item an activity is.
type ActivityType string

const (
	ActivityAttraction     ActivityType = "attraction"
	ActivityReservation    ActivityType = "reservation"
	ActivityTransportation ActivityType = "transportation"
	ActivityAccommodation  ActivityType = "accommodation"
	ActivityOther          ActivityType = "other"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityAttraction, ActivityReservation, ActivityTransportation,
		ActivityAccommodation, ActivityOther:
		return true
	}
	return false
}

// Activity is a single scheduled item within a Day.
// Times are zero-padded "HH:MM" time-of-day strings, so lexicographic
// comparison orders them chronologically. Optional string fields use the
// empty string for absence; an absent Cost (nil) means the activity is free,
// and an absent EndTime means the activity is open-ended.
type Activity struct {
	ID                 uuid.UUID    `json:"id"`
	Type               ActivityType `json:"type"`
	Title              string       `json:"title"`
	Description        string       `json:"description,omitempty"`
	StartTime          string       `json:"start_time"`
	EndTime            string       `json:"end_time,omitempty"`
	Location           string       `json:"location,omitempty"`
	Address            string       `json:"address,omitempty"`
	ConfirmationNumber string       `json:"confirmation_number,omitempty"`
	Cost               *float64     `json:"cost,omitempty"` // non-negative when set
	Currency           string       `json:"currency,omitempty"`
	Notes              string       `json:"notes,omitempty"`
	URL                string       `json:"url,omitempty"`
	Phone              string       `json:"phone,omitempty"`
}
