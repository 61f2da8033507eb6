package pubdata

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

func TestBeerFetchFallsBackWithoutURL(t *testing.T) {
	f := &BeerFetcher{HTTPClient: http.DefaultClient, Now: time.Now}

	menu := f.Fetch(context.Background())
	require.NotNil(t, menu)
	assert.Equal(t, 4, menu.TotalTaps)
	assert.Equal(t, "Castle IPA", menu.Beers[0].Name)
}

func TestBeerFetchCachesForFiveMinutes(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(models.BeerMenu{
			Beers:     []models.Beer{{ID: "b1", Name: "Fresh Tap", Available: true}},
			TotalTaps: 1,
		})
	}))
	defer srv.Close()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &BeerFetcher{
		HTTPClient: srv.Client(),
		URL:        srv.URL,
		Now:        func() time.Time { return now },
	}

	first := f.Fetch(context.Background())
	second := f.Fetch(context.Background())
	assert.Equal(t, 1, calls, "second fetch inside the TTL is served from cache")
	assert.Equal(t, first, second)

	now = now.Add(6 * time.Minute)
	f.Fetch(context.Background())
	assert.Equal(t, 2, calls, "cache expires after five minutes")
}

func TestBeerFetchServesStaleCacheOnError(t *testing.T) {
	var fail bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.BeerMenu{
			Beers:     []models.Beer{{ID: "b1", Name: "Fresh Tap", Available: true}},
			TotalTaps: 1,
		})
	}))
	defer srv.Close()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &BeerFetcher{
		HTTPClient: srv.Client(),
		URL:        srv.URL,
		Now:        func() time.Time { return now },
	}

	f.Fetch(context.Background())
	fail = true
	now = now.Add(10 * time.Minute)

	menu := f.Fetch(context.Background())
	require.NotNil(t, menu)
	assert.Equal(t, "Fresh Tap", menu.Beers[0].Name, "stale cache beats the fallback list")
}

func TestBeerFetchAcceptsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Beer{
			{ID: "b1", Name: "Array Ale", Available: true},
			{ID: "b2", Name: "Slice Stout", Available: true},
		})
	}))
	defer srv.Close()

	f := &BeerFetcher{HTTPClient: srv.Client(), URL: srv.URL, Now: time.Now}

	menu := f.Fetch(context.Background())
	require.NotNil(t, menu)
	assert.Equal(t, 2, menu.TotalTaps)
	assert.Equal(t, "Array Ale", menu.Beers[0].Name)
}

func TestFormatBeerMenuSkipsUnavailable(t *testing.T) {
	menu := &models.BeerMenu{
		Beers: []models.Beer{
			{Name: "On Tap", Brewery: "Brew Co", Style: "IPA", ABV: 6.0, Price: "€6.00", Available: true, TapNumber: 1},
			{Name: "Kicked Keg", Brewery: "Brew Co", Style: "Stout", ABV: 8.0, Price: "€7.00", Available: false},
		},
		LastUpdated: "2026-08-29T12:00:00Z",
	}

	out := FormatBeerMenu(menu)
	assert.Contains(t, out, "1 beers on tap")
	assert.Contains(t, out, "**On Tap** by Brew Co")
	assert.Contains(t, out, "Tap #1")
	assert.NotContains(t, out, "Kicked Keg")
}

func TestFormatBeerMenuEmpty(t *testing.T) {
	out := FormatBeerMenu(&models.BeerMenu{})
	assert.Equal(t, "No beers currently available on tap.", out)
}
