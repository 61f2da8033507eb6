package reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castlechat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, sleeps *[]time.Duration) *HTTPClient {
	t.Helper()
	return NewHTTPClient(ClientOptions{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		Sleep: func(_ context.Context, d time.Duration) error {
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}
			return nil
		},
		Jitter: func() time.Duration { return 0 },
	})
}

func TestGetRoomsDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/chat/rooms", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		json.NewEncoder(w).Encode([]models.Room{
			{ID: "r1", Name: "Back Room", TotalCapacity: 30},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	rooms, err := client.GetRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Back Room", rooms[0].Name)
}

func TestRetriesOnServerErrorThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.WorkingHours{Open: "16:00", Close: "23:00", Slots: []string{"19:00"}})
	}))
	defer srv.Close()

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)
	hours, err := client.GetWorkingHours(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "16:00", hours.Open)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 600 * time.Millisecond}, sleeps)
}

func TestRetryBudgetExhausted(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "still down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	_, err := client.GetRooms(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, calls, "one initial attempt plus two retries")

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "apiError", cerr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, cerr.Status)
	assert.Contains(t, cerr.Message, "still down")
}

func TestRetryAfterHeaderWins(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]models.Room{})
	}))
	defer srv.Close()

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)
	_, err := client.GetRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second}, sleeps)
}

func TestClientErrorDoesNotRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"party too large"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	_, err := client.CheckAvailability(context.Background(), models.AvailabilityRequest{
		Date: "2026-09-01", Time: "19:00", PartySize: 99,
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, http.StatusUnprocessableEntity, cerr.Status)
	assert.Contains(t, cerr.Message, "party too large")
}

func TestNoContentYieldsZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	hours, err := client.GetWorkingHours(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, models.WorkingHours{}, hours)
}

func TestNonJSONBodyKeptInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	_, err := client.GetRooms(context.Background())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "decodeError", cerr.Code)
	assert.Contains(t, cerr.Message, "<html>gateway</html>")
}

func TestMissingConfigSurfacesOnFirstCall(t *testing.T) {
	client := NewHTTPClient(ClientOptions{
		Timeout:    time.Second,
		MaxRetries: 1,
	})
	_, err := client.GetRooms(context.Background())
	require.Error(t, err)

	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "configError", cerr.Code)
}

func TestCreateReservationSendsIdempotencyKey(t *testing.T) {
	var gotKey string
	var gotPayload models.CreateReservationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(models.CreatedReservation{ID: "res-42", Status: "confirmed"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, nil)
	created, err := client.CreateReservation(context.Background(), models.CreateReservationPayload{
		CustomerName: "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        "030123456",
		Date:         "2026-09-01",
		Time:         "19:00",
		PartySize:    4,
	}, "key-123")
	require.NoError(t, err)
	assert.Equal(t, "res-42", created.ID)
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, "Ada Lovelace", gotPayload.CustomerName)
}
