package planner

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
)

// Every operation in this file returns a new Day value with a fresh
// activities slice; the input Day is never mutated. Untouched Activity
// values are carried over as-is, so snapshots taken before an edit stay
// valid for change-detection consumers.

// AddActivity appends an activity to the day's collection.
// The caller supplies the payload without an ID; the stored activity gets a
// fresh one from newID.
func AddActivity(day domain.Day, payload domain.Activity, newID func() uuid.UUID) domain.Day {
	payload.ID = newID()

	activities := make([]domain.Activity, 0, len(day.Activities)+1)
	activities = append(activities, day.Activities...)
	activities = append(activities, payload)

	day.Activities = activities
	return day
}

// UpdateActivity replaces the activity with the given ID in place, keeping
// its ID and its position in the collection. If no activity with that ID
// exists the day is returned unchanged: callers only operate on IDs just
// read from the current state, so a miss is not an error.
func UpdateActivity(day domain.Day, activityID uuid.UUID, payload domain.Activity) domain.Day {
	idx := indexOfActivity(day.Activities, activityID)
	if idx < 0 {
		return day
	}

	payload.ID = activityID

	activities := make([]domain.Activity, len(day.Activities))
	copy(activities, day.Activities)
	activities[idx] = payload

	day.Activities = activities
	return day
}

// DeleteActivity removes the activity with the given ID from the day's
// collection. A miss returns the day unchanged.
func DeleteActivity(day domain.Day, activityID uuid.UUID) domain.Day {
	idx := indexOfActivity(day.Activities, activityID)
	if idx < 0 {
		return day
	}

	activities := make([]domain.Activity, 0, len(day.Activities)-1)
	activities = append(activities, day.Activities[:idx]...)
	activities = append(activities, day.Activities[idx+1:]...)

	day.Activities = activities
	return day
}

// SortedActivities returns the day's activities ordered by start time for
// display. Start times are zero-padded "HH:MM" strings, so a lexicographic
// comparison is chronological. The sort is a read-time projection: stored
// order stays insertion order, and ties keep it (stable sort).
func SortedActivities(day domain.Day) []domain.Activity {
	activities := make([]domain.Activity, len(day.Activities))
	copy(activities, day.Activities)

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime < activities[j].StartTime
	})
	return activities
}

func indexOfActivity(activities []domain.Activity, id uuid.UUID) int {
	for i, a := range activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}
