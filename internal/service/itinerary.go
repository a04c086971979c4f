// Package service contains the business logic for the Tripbook API.
// Services validate inputs, enforce business rules, and orchestrate session
// calls. No state lives here: services depend on the session through
// interfaces, not on its implementation.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jturpin/tripbook/internal/domain"
	"github.com/jturpin/tripbook/internal/notify"
	"github.com/jturpin/tripbook/internal/planner"
)

// ItineraryStore defines the session operations the itinerary service
// depends on. Defining the interface here (in the consumer package) lets
// service tests inject a mock without a real session.
type ItineraryStore interface {
	Current() (domain.Itinerary, error)
	Create(params domain.Itinerary) (domain.Itinerary, error)
	Update(params domain.Itinerary) (domain.Itinerary, error)
}

// ItineraryService implements business logic for itinerary operations.
type ItineraryService struct {
	store    ItineraryStore
	notifier notify.Notifier
}

// NewItineraryService constructs an ItineraryService over the given store.
// A nil notifier disables notifications.
func NewItineraryService(store ItineraryStore, notifier notify.Notifier) *ItineraryService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ItineraryService{store: store, notifier: notifier}
}

// Create validates the metadata and creates a fresh itinerary with one empty
// day per date in its range. Returns domain.ErrValidation for invalid input.
func (s *ItineraryService) Create(ctx context.Context, params domain.Itinerary) (domain.Itinerary, error) {
	params = normalizeItinerary(params)
	if err := validateItinerary(params); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	result, err := s.store.Create(params)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	s.notifier.Notify(ctx, notify.EventCreated, "itinerary")
	return result, nil
}

// Get returns the current itinerary snapshot.
// Returns domain.ErrNotFound while no itinerary exists.
func (s *ItineraryService) Get(ctx context.Context) (domain.Itinerary, error) {
	result, err := s.store.Current()
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return result, nil
}

// Update validates the metadata and applies it to the existing itinerary,
// reconciling its day list against the new date range. Days still in range
// keep their IDs and activities; dates dropped from the range lose theirs.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound while
// no itinerary exists.
func (s *ItineraryService) Update(ctx context.Context, params domain.Itinerary) (domain.Itinerary, error) {
	params = normalizeItinerary(params)
	if err := validateItinerary(params); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	result, err := s.store.Update(params)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	s.notifier.Notify(ctx, notify.EventUpdated, "itinerary")
	return result, nil
}

// Budget returns the declared budget next to the spend computed across all
// activities. Returns domain.ErrNotFound while no itinerary exists.
func (s *ItineraryService) Budget(ctx context.Context) (domain.BudgetSummary, error) {
	it, err := s.store.Current()
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.ItineraryService.Budget: %w", err)
	}
	return domain.BudgetSummary{
		TotalBudget: it.TotalBudget,
		TotalSpent:  planner.TotalSpent(it),
		Currency:    it.Currency,
	}, nil
}

// normalizeItinerary applies defaults before validation.
// A missing traveler count means one traveler.
func normalizeItinerary(it domain.Itinerary) domain.Itinerary {
	if it.Travelers == 0 {
		it.Travelers = 1
	}
	return it
}

// validateItinerary enforces business rules common to Create and Update.
//   - Title and destination must be non-empty (whitespace-only is rejected).
//   - Both dates must be set, and the end date must not be before the start.
//   - A declared budget must be non-negative; travelers must be positive.
func validateItinerary(it domain.Itinerary) error {
	if strings.TrimSpace(it.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(it.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if it.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if it.EndDate.IsZero() {
		return fmt.Errorf("%w: end_date is required", domain.ErrValidation)
	}
	if domain.Date(it.EndDate).Before(domain.Date(it.StartDate)) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if it.TotalBudget != nil && *it.TotalBudget < 0 {
		return fmt.Errorf("%w: total_budget must not be negative", domain.ErrValidation)
	}
	if it.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be positive", domain.ErrValidation)
	}
	return nil
}
