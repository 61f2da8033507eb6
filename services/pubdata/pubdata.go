// Package pubdata holds the static venue knowledge base embedded at build
// time, plus the live feeds (beer taps, reservation overview) layered on
// top of it. Everything here renders to prompt-ready text blocks.
package pubdata

import (
	"embed"
	"encoding/json"
	"log"

	"castlechat/models"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	menu         models.MenuData
	hours        models.HoursData
	events       models.EventsData
	faq          models.FAQData
	loyalty      models.LoyaltyData
	reservations models.ReservationOverview
)

func init() {
	mustLoad("data/menu.json", &menu)
	mustLoad("data/hours.json", &hours)
	mustLoad("data/events.json", &events)
	mustLoad("data/faq.json", &faq)
	mustLoad("data/loyalty.json", &loyalty)
	mustLoad("data/reservations.json", &reservations)
}

func mustLoad(name string, out interface{}) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		log.Fatalf("pubdata: missing embedded file %s: %v", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Fatalf("pubdata: invalid embedded file %s: %v", name, err)
	}
}

// Menu returns the embedded menu and concept data.
func Menu() models.MenuData { return menu }

// Hours returns the embedded weekly opening hours.
func Hours() models.HoursData { return hours }

// Events returns the embedded venue features.
func Events() models.EventsData { return events }

// FAQ returns the embedded policies and facilities data.
func FAQ() models.FAQData { return faq }

// Loyalty returns the embedded loyalty program description.
func Loyalty() models.LoyaltyData { return loyalty }
