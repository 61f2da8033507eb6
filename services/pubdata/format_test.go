package pubdata

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	out := FormatHours()

	assert.Contains(t, out, "**OPENING HOURS:**")
	assert.Contains(t, out, "Monday: 16:00 - 01:00")
	assert.Contains(t, out, "Saturday: 12:00 - 03:00")
	assert.Contains(t, out, "**SPECIAL NOTES:**")

	// Days render in calendar order, not map order.
	monday := strings.Index(out, "Monday")
	sunday := strings.Index(out, "Sunday:")
	assert.Less(t, monday, sunday)
}

func TestFormatMenu(t *testing.T) {
	out := FormatMenu()

	assert.Contains(t, out, "**MENU INFORMATION:**")
	assert.Contains(t, out, "Invalidenstraße 129")
	assert.Contains(t, out, "Stone-oven pizza")
}

func TestFormatEventsIsStable(t *testing.T) {
	first := FormatEvents()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FormatEvents(), "map-backed sections must render deterministically")
	}
	assert.Contains(t, first, "Pub Quiz")
	assert.Contains(t, first, "Tap Takeover")
}

func TestFormatLoyaltyOrdersTiersByPoints(t *testing.T) {
	out := FormatLoyalty()

	regular := strings.Index(out, "REGULAR (0+ points)")
	knight := strings.Index(out, "KNIGHT (500+ points)")
	royalty := strings.Index(out, "ROYALTY (1500+ points)")

	assert.Greater(t, regular, -1)
	assert.Less(t, regular, knight)
	assert.Less(t, knight, royalty)
}

func TestFormatTimeContext(t *testing.T) {
	// A Saturday evening while the pub is open.
	out := FormatTimeContext(time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC))

	assert.Contains(t, out, "Day: Saturday")
	assert.Contains(t, out, "Time: 18:30")
	assert.Contains(t, out, "Currently open")
	assert.Contains(t, out, "12:00 - 03:00")
}

func TestFormatAllJoinsEverySection(t *testing.T) {
	out := FormatAll(time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC))

	for _, section := range []string{
		"**CURRENT CONTEXT:**",
		"**OPENING HOURS:**",
		"**MENU INFORMATION:**",
		"**VENUE FEATURES & INFORMATION:**",
		"**POLICIES & INFORMATION:**",
		"**CASTLE CREW:**",
	} {
		assert.Contains(t, out, section)
	}
}
