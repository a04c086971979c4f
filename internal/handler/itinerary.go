package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/jturpin/tripbook/internal/domain"
	"github.com/jturpin/tripbook/internal/planner"
)

// ItineraryRequest is the body for POST /itinerary and PUT /itinerary.
// Dates are ISO calendar dates ("2006-01-02"); openapi_types.Date enforces
// the format during unmarshalling.
type ItineraryRequest struct {
	Title       string             `json:"title"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalBudget *float64           `json:"total_budget,omitempty"`
	Currency    string             `json:"currency,omitempty"`
	Travelers   int                `json:"travelers,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

// DayResponse is one day in an itinerary response. Activities are sorted by
// start time for display; stored order is not exposed.
type DayResponse struct {
	ID         uuid.UUID          `json:"id"`
	Date       openapi_types.Date `json:"date"`
	Title      string             `json:"title,omitempty"`
	Activities []domain.Activity  `json:"activities"`
}

// ItineraryResponse is the body for all endpoints returning an itinerary.
type ItineraryResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Days        []DayResponse      `json:"days"`
	TotalBudget *float64           `json:"total_budget,omitempty"`
	Currency    string             `json:"currency,omitempty"`
	Travelers   int                `json:"travelers"`
	Notes       string             `json:"notes,omitempty"`
}

// CreateItinerary handles POST /itinerary.
// Creates a fresh itinerary with one empty day per date in the range,
// replacing any previously held one.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeItineraryRequest(w, r)
	if !ok {
		return
	}

	created, err := s.itineraries.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itineraryToResponse(created))
}

// GetItinerary handles GET /itinerary.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.itineraries.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("no itinerary created yet"))
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// UpdateItinerary handles PUT /itinerary.
// Edits metadata and reconciles the day list against the new date range.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeItineraryRequest(w, r)
	if !ok {
		return
	}

	updated, err := s.itineraries.Update(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusNotFound, notFoundBody("no itinerary created yet"))
		case errors.Is(err, domain.ErrValidation):
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		default:
			serverError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(updated))
}

// GetBudget handles GET /itinerary/budget.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	summary, err := s.itineraries.Budget(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("no itinerary created yet"))
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// --- mapping helpers --------------------------------------------------------

// decodeItineraryRequest decodes and maps the request body, writing a 422 and
// returning ok=false on malformed input.
func decodeItineraryRequest(w http.ResponseWriter, r *http.Request) (domain.Itinerary, bool) {
	var req ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return domain.Itinerary{}, false
	}
	return domain.Itinerary{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		TotalBudget: req.TotalBudget,
		Currency:    req.Currency,
		Travelers:   req.Travelers,
		Notes:       req.Notes,
	}, true
}

// itineraryToResponse converts a domain.Itinerary into its response shape,
// projecting each day's activities into display order.
func itineraryToResponse(it domain.Itinerary) ItineraryResponse {
	days := make([]DayResponse, len(it.Days))
	for i, day := range it.Days {
		days[i] = DayResponse{
			ID:         day.ID,
			Date:       openapi_types.Date{Time: day.Date},
			Title:      day.Title,
			Activities: planner.SortedActivities(day),
		}
	}
	return ItineraryResponse{
		ID:          it.ID,
		Title:       it.Title,
		Destination: it.Destination,
		StartDate:   openapi_types.Date{Time: it.StartDate},
		EndDate:     openapi_types.Date{Time: it.EndDate},
		Days:        days,
		TotalBudget: it.TotalBudget,
		Currency:    it.Currency,
		Travelers:   it.Travelers,
		Notes:       it.Notes,
	}
}

// serverError writes a generic 500. Unexpected errors carry internal detail
// that does not belong in the response body.
func serverError(w http.ResponseWriter, _ error) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}
