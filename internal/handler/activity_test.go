package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jturpin/tripbook/internal/domain"
	"github.com/jturpin/tripbook/internal/handler"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	add    func(ctx context.Context, dayID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	update func(ctx context.Context, dayID, activityID uuid.UUID, payload domain.Activity) (domain.Itinerary, error)
	delete func(ctx context.Context, dayID, activityID uuid.UUID) (domain.Itinerary, error)
}

func (m *mockActivityServicer) Add(ctx context.Context, dayID uuid.UUID, p domain.Activity) (domain.Itinerary, error) {
	return m.add(ctx, dayID, p)
}
func (m *mockActivityServicer) Update(ctx context.Context, dayID, activityID uuid.UUID, p domain.Activity) (domain.Itinerary, error) {
	return m.update(ctx, dayID, activityID, p)
}
func (m *mockActivityServicer) Delete(ctx context.Context, dayID, activityID uuid.UUID) (domain.Itinerary, error) {
	return m.delete(ctx, dayID, activityID)
}

// compile-time check: mockActivityServicer must satisfy handler.ActivityServicer.
var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func activitiesPath(dayID uuid.UUID) string {
	return "/itinerary/days/" + dayID.String() + "/activities"
}

// ---- POST /itinerary/days/{dayID}/activities --------------------------------

func TestAddActivity_201(t *testing.T) {
	fixture := itineraryFixture()
	var gotDayID uuid.UUID
	var gotPayload domain.Activity
	svc := &mockActivityServicer{
		add: func(_ context.Context, dayID uuid.UUID, p domain.Activity) (domain.Itinerary, error) {
			gotDayID, gotPayload = dayID, p
			return fixture, nil
		},
	}

	dayID := fixture.Days[1].ID
	body := jsonBody(t, map[string]any{
		"type":       "attraction",
		"title":      "Louvre",
		"start_time": "10:00",
		"cost":       22.0,
	})

	req := httptest.NewRequest(http.MethodPost, activitiesPath(dayID)+"/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, dayID, gotDayID)
	assert.Equal(t, "Louvre", gotPayload.Title)
	assert.Equal(t, domain.ActivityAttraction, gotPayload.Type)
	require.NotNil(t, gotPayload.Cost)
	assert.Equal(t, 22.0, *gotPayload.Cost)
}

func TestAddActivity_ClientSuppliedIDIgnored(t *testing.T) {
	var gotPayload domain.Activity
	svc := &mockActivityServicer{
		add: func(_ context.Context, _ uuid.UUID, p domain.Activity) (domain.Itinerary, error) {
			gotPayload = p
			return itineraryFixture(), nil
		},
	}

	body := jsonBody(t, map[string]any{
		"id":         uuid.New().String(),
		"type":       "attraction",
		"title":      "Louvre",
		"start_time": "10:00",
	})

	req := httptest.NewRequest(http.MethodPost, activitiesPath(uuid.New())+"/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uuid.Nil, gotPayload.ID)
}

func TestAddActivity_404_UnknownDay(t *testing.T) {
	svc := &mockActivityServicer{
		add: func(_ context.Context, _ uuid.UUID, _ domain.Activity) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{
		"type":       "attraction",
		"title":      "Louvre",
		"start_time": "10:00",
	})

	req := httptest.NewRequest(http.MethodPost, activitiesPath(uuid.New())+"/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddActivity_404_MalformedDayID(t *testing.T) {
	svc := &mockActivityServicer{}

	body := jsonBody(t, map[string]any{
		"type":       "attraction",
		"title":      "Louvre",
		"start_time": "10:00",
	})

	req := httptest.NewRequest(http.MethodPost, "/itinerary/days/not-a-uuid/activities/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddActivity_422_ValidationError(t *testing.T) {
	svc := &mockActivityServicer{
		add: func(_ context.Context, _ uuid.UUID, _ domain.Activity) (domain.Itinerary, error) {
			return domain.Itinerary{}, fmt.Errorf("%w: start_time is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{
		"type":  "attraction",
		"title": "Louvre",
	})

	req := httptest.NewRequest(http.MethodPost, activitiesPath(uuid.New())+"/", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "start_time is required", resp.Error.Message)
}

// ---- PUT /itinerary/days/{dayID}/activities/{activityID} ---------------------

func TestUpdateActivity_200(t *testing.T) {
	fixture := itineraryFixture()
	var gotActivityID uuid.UUID
	svc := &mockActivityServicer{
		update: func(_ context.Context, _, activityID uuid.UUID, _ domain.Activity) (domain.Itinerary, error) {
			gotActivityID = activityID
			return fixture, nil
		},
	}

	activityID := uuid.New()
	body := jsonBody(t, map[string]any{
		"type":       "reservation",
		"title":      "Dinner",
		"start_time": "19:30",
	})

	req := httptest.NewRequest(http.MethodPut, activitiesPath(fixture.Days[0].ID)+"/"+activityID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, activityID, gotActivityID)
}

func TestUpdateActivity_404_UnknownDay(t *testing.T) {
	svc := &mockActivityServicer{
		update: func(_ context.Context, _, _ uuid.UUID, _ domain.Activity) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{
		"type":       "reservation",
		"title":      "Dinner",
		"start_time": "19:30",
	})

	req := httptest.NewRequest(http.MethodPut, activitiesPath(uuid.New())+"/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /itinerary/days/{dayID}/activities/{activityID} ------------------

func TestDeleteActivity_204(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) (domain.Itinerary, error) {
			return itineraryFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, activitiesPath(uuid.New())+"/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteActivity_404_UnknownDay(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete, activitiesPath(uuid.New())+"/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
