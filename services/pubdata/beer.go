package pubdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"castlechat/config"
	"castlechat/models"
	"castlechat/utils"

	"go.uber.org/zap"
)

const beerCacheTTL = 5 * time.Minute

// BeerFetcher pulls the live tap list and caches it in-process. The chat
// path never fails on a beer API outage: stale cache wins over an error,
// and a static fallback list wins over an empty cache.
type BeerFetcher struct {
	HTTPClient *http.Client
	URL        string
	Now        func() time.Time

	mu        sync.Mutex
	cached    *models.BeerMenu
	fetchedAt time.Time
}

// NewBeerFetcher builds a fetcher against the configured beer API.
func NewBeerFetcher() *BeerFetcher {
	return &BeerFetcher{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		URL:        config.AppConfig.BeerAPIURL,
		Now:        time.Now,
	}
}

// Fetch returns the current beer menu, from cache when fresh.
func (f *BeerFetcher) Fetch(ctx context.Context) *models.BeerMenu {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.Now()
	if f.cached != nil && now.Sub(f.fetchedAt) < beerCacheTTL {
		return f.cached
	}

	menu, err := f.fetch(ctx)
	if err != nil {
		utils.GetLogger().Warn("beer menu fetch failed", zap.Error(err))
		if f.cached != nil {
			return f.cached
		}
		return fallbackBeerMenu(now)
	}

	f.cached = menu
	f.fetchedAt = now
	return menu
}

// Refresh drops the cache and fetches anew. Used by the background
// refresh job so chat requests rarely pay the fetch latency.
func (f *BeerFetcher) Refresh(ctx context.Context) error {
	menu, err := f.fetch(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.cached = menu
	f.fetchedAt = f.Now()
	f.mu.Unlock()
	return nil
}

func (f *BeerFetcher) fetch(ctx context.Context) (*models.BeerMenu, error) {
	if f.URL == "" {
		return nil, fmt.Errorf("BEER_API_URL not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "castle-concierge/1.0")

	res, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("beer API returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	// Some deployments return a bare array of beers.
	var menu models.BeerMenu
	if err := json.Unmarshal(body, &menu); err != nil {
		var beers []models.Beer
		if err2 := json.Unmarshal(body, &beers); err2 != nil {
			return nil, err
		}
		menu = models.BeerMenu{Beers: beers, LastUpdated: f.Now().Format(time.RFC3339), TotalTaps: len(beers)}
	}
	return &menu, nil
}

func fallbackBeerMenu(now time.Time) *models.BeerMenu {
	return &models.BeerMenu{
		Beers: []models.Beer{
			{ID: "tap-1", Name: "Castle IPA", Brewery: "Local Brewery", Style: "IPA", ABV: 6.2, IBU: 65, Price: "€6.50", Description: "Hoppy India Pale Ale with citrus notes", Available: true, TapNumber: 1},
			{ID: "tap-2", Name: "Berlin Pils", Brewery: "Berliner Brauerei", Style: "Pilsner", ABV: 4.8, IBU: 25, Price: "€5.50", Description: "Crisp German pilsner with floral hops", Available: true, TapNumber: 2},
			{ID: "tap-3", Name: "Wheat Wonder", Brewery: "Castle Brewing", Style: "Wheat Beer", ABV: 5.1, IBU: 15, Price: "€6.00", Description: "Smooth wheat beer with banana and clove notes", Available: true, TapNumber: 3},
			{ID: "tap-4", Name: "Dark Knight Stout", Brewery: "Gothic Ales", Style: "Stout", ABV: 7.2, IBU: 45, Price: "€7.50", Description: "Rich, creamy stout with coffee and chocolate notes", Available: true, TapNumber: 4},
		},
		LastUpdated: now.Format(time.RFC3339),
		TotalTaps:   4,
	}
}

// FormatBeerMenu renders the tap list block for the system prompt.
func FormatBeerMenu(menu *models.BeerMenu) string {
	available := make([]models.Beer, 0, len(menu.Beers))
	for _, beer := range menu.Beers {
		if beer.Available {
			available = append(available, beer)
		}
	}
	if len(available) == 0 {
		return "No beers currently available on tap."
	}

	lines := make([]string, 0, len(available))
	for _, beer := range available {
		parts := []string{
			fmt.Sprintf("**%s** by %s", beer.Name, beer.Brewery),
			fmt.Sprintf("Style: %s", beer.Style),
			fmt.Sprintf("ABV: %.1f%%", beer.ABV),
		}
		if beer.IBU > 0 {
			parts = append(parts, fmt.Sprintf("IBU: %d", beer.IBU))
		}
		parts = append(parts, fmt.Sprintf("Price: %s", beer.Price))
		if beer.Description != "" {
			parts = append(parts, fmt.Sprintf("Description: %s", beer.Description))
		}
		if beer.TapNumber > 0 {
			parts = append(parts, fmt.Sprintf("Tap #%d", beer.TapNumber))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}

	return fmt.Sprintf("**Current Beer Selection (%d beers on tap):**\nLast updated: %s\n\n%s",
		len(available), menu.LastUpdated, strings.Join(lines, "\n\n"))
}
