package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castlechat/models"
	"castlechat/services/reservation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingClient struct{}

func (stubBookingClient) GetRooms(context.Context) ([]models.Room, error) {
	return []models.Room{{ID: "r1", Name: "Back Room", TotalCapacity: 30}}, nil
}

func (stubBookingClient) GetWorkingHours(context.Context, string) (models.WorkingHours, error) {
	return models.WorkingHours{Open: "16:00", Close: "23:00", Slots: []string{"19:00", "20:00"}}, nil
}

func (stubBookingClient) CheckAvailability(context.Context, models.AvailabilityRequest) (models.AvailabilityResult, error) {
	return models.AvailabilityResult{Available: true}, nil
}

func (stubBookingClient) CreateReservation(context.Context, models.CreateReservationPayload, string) (models.CreatedReservation, error) {
	return models.CreatedReservation{ID: "res-1", Status: "confirmed"}, nil
}

func newReservationRouter(store reservation.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	manager := &reservation.Manager{
		Client: stubBookingClient{},
		Now:    func() time.Time { return time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC) },
		NewKey: func() string { return "key-fixed" },
	}
	router := gin.New()
	router.POST("/api/reservations/chat", NewReservationChatHandler(manager, store).Handle)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReservationChatRejectsMissingFields(t *testing.T) {
	router := newReservationRouter(reservation.NewMemoryStore())

	w := postChat(t, router, map[string]string{"message": "tomorrow"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postChat(t, router, map[string]string{"sessionId": "s1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postChat(t, router, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationChatCreatesAndPersistsSession(t *testing.T) {
	store := reservation.NewMemoryStore()
	router := newReservationRouter(store)

	w := postChat(t, router, models.ReservationChatRequest{SessionID: "s1", Message: "tomorrow"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReservationChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "What time")
	require.NotNil(t, resp.State)
	assert.Equal(t, "2026-08-30", resp.State.Slots.Date)

	saved, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "2026-08-30", saved.Slots.Date)
}

func TestReservationChatContinuesExistingSession(t *testing.T) {
	store := reservation.NewMemoryStore()
	router := newReservationRouter(store)

	postChat(t, router, models.ReservationChatRequest{SessionID: "s1", Message: "tomorrow"})
	w := postChat(t, router, models.ReservationChatRequest{SessionID: "s1", Message: "7pm"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReservationChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "How many people")
	assert.Equal(t, "19:00", resp.State.Slots.Time)
}

func TestReservationChatSessionsAreIsolated(t *testing.T) {
	store := reservation.NewMemoryStore()
	router := newReservationRouter(store)

	postChat(t, router, models.ReservationChatRequest{SessionID: "s1", Message: "tomorrow"})
	w := postChat(t, router, models.ReservationChatRequest{SessionID: "s2", Message: "today"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReservationChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-08-29", resp.State.Slots.Date)

	saved, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", saved.Slots.Date)
}
