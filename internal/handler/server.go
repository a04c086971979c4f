// Package handler implements the HTTP handlers for the Tripbook API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, itinerary.go, activity.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service or session layer.
type ItineraryServicer interface {
	Create(ctx context.Context, params domain.Itinerary) (domain.Itinerary, error)
	Get(ctx context.Context) (domain.Itinerary, error)
	Update(ctx context.Context, params domain.Itinerary) (domain.Itinerary, error)
	Budget(ctx context.Context) (domain.BudgetSummary, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Add(ctx context.Context, dayID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	Update(ctx context.Context, dayID, activityID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	Delete(ctx context.Context, dayID, activityID uuid.UUID) (domain.Itinerary, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	itineraries ItineraryServicer
	activities  ActivityServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itineraries ItineraryServicer, activities ActivityServicer) *Server {
	return &Server{itineraries: itineraries, activities: activities}
}

// Routes returns the chi router for the full API surface.
// Mount it at "/" in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/itinerary", func(r chi.Router) {
		r.Post("/", s.CreateItinerary)
		r.Get("/", s.GetItinerary)
		r.Put("/", s.UpdateItinerary)
		r.Get("/budget", s.GetBudget)

		r.Route("/days/{dayID}/activities", func(r chi.Router) {
			r.Post("/", s.AddActivity)
			r.Put("/{activityID}", s.UpdateActivity)
			r.Delete("/{activityID}", s.DeleteActivity)
		})
	})

	return r
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
