// Package session holds the single in-memory itinerary for the running
// process. It is the stateful shell around the pure planner core: every
// mutation builds a complete new Itinerary value (reusing untouched Days)
// and swaps it in under a lock, so readers always see a fully-applied edit
// and snapshots handed out earlier are never modified behind their backs.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
	"github.com/jturpin/tripbook/internal/planner"
)

// IDFunc produces a unique opaque identifier for itineraries, days, and
// activities. The default is uuid.New; tests inject deterministic ones.
type IDFunc func() uuid.UUID

// Session owns at most one Itinerary. It starts empty and becomes active on
// the first Create; there is no transition back to empty. The zero value is
// not usable; construct with New.
type Session struct {
	mu        sync.RWMutex
	newID     IDFunc
	itinerary *domain.Itinerary
}

// New returns an empty Session using uuid.New for identifiers.
func New() *Session {
	return NewWithIDs(uuid.New)
}

// NewWithIDs returns an empty Session using the given ID generator.
func NewWithIDs(newID IDFunc) *Session {
	return &Session{newID: newID}
}

// Current returns a snapshot of the held itinerary.
// Returns domain.ErrNotFound while the session is empty.
func (s *Session) Current() (domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.itinerary == nil {
		return domain.Itinerary{}, domain.ErrNotFound
	}
	return *s.itinerary, nil
}

// Create builds a new itinerary from the given metadata: a fresh ID and one
// fresh empty Day per date in [StartDate, EndDate]. Any ID or Days on the
// input are ignored. A previously held itinerary is replaced wholesale.
//
// Input is assumed validated (required fields present, end not before
// start); that is the service layer's job.
func (s *Session) Create(params domain.Itinerary) (domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := params
	it.ID = s.newID()
	it.StartDate = domain.Date(params.StartDate)
	it.EndDate = domain.Date(params.EndDate)
	it.Days = planner.ReconcileDays(nil, it.StartDate, it.EndDate, s.newID)

	s.itinerary = &it
	return it, nil
}

// Update replaces the held itinerary's metadata and reconciles its day list
// against the new date range: Days whose dates stay in range are reused with
// their IDs and activities intact, newly added dates get fresh empty Days,
// and dates no longer in range are dropped along with their activities.
// The itinerary's own ID is preserved. The input's ID and Days are ignored.
//
// Returns domain.ErrNotFound while the session is empty.
func (s *Session) Update(params domain.Itinerary) (domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.itinerary == nil {
		return domain.Itinerary{}, domain.ErrNotFound
	}

	current := *s.itinerary
	it := params
	it.ID = current.ID
	it.StartDate = domain.Date(params.StartDate)
	it.EndDate = domain.Date(params.EndDate)
	it.Days = planner.ReconcileDays(current.Days, it.StartDate, it.EndDate, s.newID)

	s.itinerary = &it
	return it, nil
}

// AddActivity appends an activity (with a freshly assigned ID) to the day
// with the given ID and returns the resulting itinerary snapshot.
// Returns domain.ErrNotFound if the session is empty or no day has that ID;
// silently dropping the payload would lose user input.
func (s *Session) AddActivity(dayID uuid.UUID, payload domain.Activity) (domain.Itinerary, error) {
	return s.replaceDay(dayID, func(day domain.Day) domain.Day {
		return planner.AddActivity(day, payload, s.newID)
	})
}

// UpdateActivity replaces the activity with the given ID on the given day,
// preserving the activity's ID and position. An unknown activity ID is a
// silent no-op. Returns domain.ErrNotFound if the session is empty or the
// day ID is unknown.
func (s *Session) UpdateActivity(dayID, activityID uuid.UUID, payload domain.Activity) (domain.Itinerary, error) {
	return s.replaceDay(dayID, func(day domain.Day) domain.Day {
		return planner.UpdateActivity(day, activityID, payload)
	})
}

// DeleteActivity removes the activity with the given ID from the given day.
// An unknown activity ID is a silent no-op. Returns domain.ErrNotFound if
// the session is empty or the day ID is unknown.
func (s *Session) DeleteActivity(dayID, activityID uuid.UUID) (domain.Itinerary, error) {
	return s.replaceDay(dayID, func(day domain.Day) domain.Day {
		return planner.DeleteActivity(day, activityID)
	})
}

// replaceDay applies fn to the day with the given ID and installs a new
// itinerary value around the result. The day list is copied, but every Day
// other than the target keeps its backing activity storage, so untouched
// days compare identical across snapshots.
func (s *Session) replaceDay(dayID uuid.UUID, fn func(domain.Day) domain.Day) (domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.itinerary == nil {
		return domain.Itinerary{}, domain.ErrNotFound
	}

	current := *s.itinerary
	idx := -1
	for i, d := range current.Days {
		if d.ID == dayID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Itinerary{}, domain.ErrNotFound
	}

	days := make([]domain.Day, len(current.Days))
	copy(days, current.Days)
	days[idx] = fn(days[idx])

	it := current
	it.Days = days

	s.itinerary = &it
	return it, nil
}
