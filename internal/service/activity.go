package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
	"github.com/jturpin/tripbook/internal/notify"
)

// ActivityStore defines the session operations the activity service depends on.
type ActivityStore interface {
	AddActivity(dayID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	UpdateActivity(dayID, activityID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	DeleteActivity(dayID, activityID uuid.UUID) (domain.Itinerary, error)
}

// ActivityService implements business logic for activity operations, scoped
// to one day of the current itinerary.
type ActivityService struct {
	store    ActivityStore
	notifier notify.Notifier
}

// NewActivityService constructs an ActivityService over the given store.
// A nil notifier disables notifications.
func NewActivityService(store ActivityStore, notifier notify.Notifier) *ActivityService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ActivityService{store: store, notifier: notifier}
}

// Add validates the payload and appends it to the given day.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound when no
// itinerary exists or the day ID is unknown.
func (s *ActivityService) Add(ctx context.Context, dayID uuid.UUID, payload domain.Activity) (domain.Itinerary, error) {
	if err := validateActivity(payload); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ActivityService.Add: %w", err)
	}
	result, err := s.store.AddActivity(dayID, payload)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ActivityService.Add: %w", err)
	}
	s.notifier.Notify(ctx, notify.EventCreated, "activity")
	return result, nil
}

// Update validates the replacement payload and applies it to the activity
// with the given ID, preserving that ID and the activity's position. An
// unknown activity ID is a silent no-op; clients only update IDs they just
// read from current state. Returns domain.ErrNotFound for an unknown day.
func (s *ActivityService) Update(ctx context.Context, dayID, activityID uuid.UUID, payload domain.Activity) (domain.Itinerary, error) {
	if err := validateActivity(payload); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	result, err := s.store.UpdateActivity(dayID, activityID, payload)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	s.notifier.Notify(ctx, notify.EventUpdated, "activity")
	return result, nil
}

// Delete removes the activity with the given ID from the given day. An
// unknown activity ID is a silent no-op. Returns domain.ErrNotFound for an
// unknown day.
func (s *ActivityService) Delete(ctx context.Context, dayID, activityID uuid.UUID) (domain.Itinerary, error) {
	result, err := s.store.DeleteActivity(dayID, activityID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	s.notifier.Notify(ctx, notify.EventDeleted, "activity")
	return result, nil
}

// validateActivity enforces business rules common to Add and Update.
//   - Type must be a known activity type.
//   - Title must be non-empty (whitespace-only is rejected).
//   - StartTime is required and must be a zero-padded "HH:MM" value; EndTime,
//     when present, must have the same shape. An end time earlier than the
//     start time is accepted (open product question, currently allowed).
//   - A cost, when present, must be non-negative.
func validateActivity(a domain.Activity) error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown activity type %q", domain.ErrValidation, a.Type)
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if a.StartTime == "" {
		return fmt.Errorf("%w: start_time is required", domain.ErrValidation)
	}
	if !validClockTime(a.StartTime) {
		return fmt.Errorf("%w: start_time must be in HH:MM format", domain.ErrValidation)
	}
	if a.EndTime != "" && !validClockTime(a.EndTime) {
		return fmt.Errorf("%w: end_time must be in HH:MM format", domain.ErrValidation)
	}
	if a.Cost != nil && *a.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	return nil
}

// validClockTime reports whether s is a zero-padded 24-hour "HH:MM" value.
// Zero-padding matters: display order relies on lexicographic comparison.
func validClockTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
