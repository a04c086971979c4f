package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jturpin/tripbook/internal/domain"
)

// AddActivity handles POST /itinerary/days/{dayID}/activities.
// The body is an activity payload without an ID; the server assigns one.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathID(w, r, "dayID", "day")
	if !ok {
		return
	}
	payload, ok := decodeActivityRequest(w, r)
	if !ok {
		return
	}

	it, err := s.activities.Add(r.Context(), dayID, payload)
	if err != nil {
		writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itineraryToResponse(it))
}

// UpdateActivity handles PUT /itinerary/days/{dayID}/activities/{activityID}.
// Replaces the activity wholesale, preserving its ID and position. An
// unknown activity ID leaves the itinerary unchanged (the current snapshot
// is still returned with 200).
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathID(w, r, "dayID", "day")
	if !ok {
		return
	}
	activityID, ok := pathID(w, r, "activityID", "activity")
	if !ok {
		return
	}
	payload, ok := decodeActivityRequest(w, r)
	if !ok {
		return
	}

	it, err := s.activities.Update(r.Context(), dayID, activityID, payload)
	if err != nil {
		writeActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itineraryToResponse(it))
}

// DeleteActivity handles DELETE /itinerary/days/{dayID}/activities/{activityID}.
// Deleting an activity ID that is already gone is a no-op 204.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	dayID, ok := pathID(w, r, "dayID", "day")
	if !ok {
		return
	}
	activityID, ok := pathID(w, r, "activityID", "activity")
	if !ok {
		return
	}

	if _, err := s.activities.Delete(r.Context(), dayID, activityID); err != nil {
		writeActivityError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ----------------------------------------------------------------

// pathID parses a UUID path parameter, writing a 404 and returning ok=false
// when it is not a valid UUID. A malformed ID can never address a resource.
func pathID(w http.ResponseWriter, r *http.Request, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundBody(resource+" not found"))
		return uuid.Nil, false
	}
	return id, true
}

// decodeActivityRequest decodes the activity payload. Any client-supplied ID
// is ignored: add assigns a fresh one and update keeps the existing one.
func decodeActivityRequest(w http.ResponseWriter, r *http.Request) (domain.Activity, bool) {
	var payload domain.Activity
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+err.Error()))
		return domain.Activity{}, false
	}
	payload.ID = uuid.Nil
	return payload, true
}

func writeActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	default:
		serverError(w, err)
	}
}
