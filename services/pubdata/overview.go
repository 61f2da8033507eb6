package pubdata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"castlechat/models"
)

// OverviewProvider supplies the operational reservation snapshot used in
// prompts. The static implementation below serves the embedded snapshot;
// a live provider can be swapped in without touching the prompt code.
type OverviewProvider interface {
	Overview(ctx context.Context) (*models.ReservationOverview, error)
}

// StaticOverviewProvider serves the embedded reservations snapshot.
type StaticOverviewProvider struct{}

func (StaticOverviewProvider) Overview(context.Context) (*models.ReservationOverview, error) {
	snapshot := reservations
	return &snapshot, nil
}

// FormatOverviewForGuests renders a privacy-safe availability summary.
// Guest prompts never include names or booking details.
func FormatOverviewForGuests(data *models.ReservationOverview) string {
	if data == nil || data.LastUpdated == "never" || data.UpdatedBy == "none" {
		return "**CURRENT AVAILABILITY:**\n\nReservation system is currently unavailable. For current availability and bookings, please contact staff directly or visit https://www.castlepub.de/reservemitte\n"
	}

	var b strings.Builder
	b.WriteString("**CURRENT AVAILABILITY:**\n\n")

	b.WriteString("**ROOM AVAILABILITY:**\n")
	for _, room := range sortedKeys(data.RoomAvailability) {
		availability := data.RoomAvailability[room]
		fmt.Fprintf(&b, "• %s (%d capacity): ", roomDisplayName(room), availability.Capacity)
		switch {
		case availability.NextAvailable == "unknown":
			b.WriteString("Check with staff for availability\n")
		case availability.CurrentBookingsToday == 0:
			b.WriteString("Available now - no reservations today\n")
		case availability.NextAvailable == "now":
			b.WriteString("Available now\n")
		case availability.NextAvailable == "Check with staff":
			b.WriteString("Limited availability - check with staff\n")
		default:
			fmt.Fprintf(&b, "Next available at %s\n", availability.NextAvailable)
		}
	}

	today := data.DailyStats.Today
	if today.BusiestTime != "" && today.BusiestTime != "unknown" {
		busyLevel := "busy"
		switch {
		case today.TotalReservations == 0:
			busyLevel = "quiet"
		case today.TotalReservations <= 2:
			busyLevel = "moderate"
		}
		b.WriteString("\n**TODAY'S STATUS:**\n")
		fmt.Fprintf(&b, "• Current booking level: %s\n", busyLevel)
		if today.BusiestTime != "Check dashboard" {
			fmt.Fprintf(&b, "• Busiest expected time: %s\n", today.BusiestTime)
		}
	}

	b.WriteString("\n**NOTE:** For specific reservations or guaranteed seating, visit https://www.castlepub.de/reservemitte\n")
	return b.String()
}

// FormatOverviewForStaff renders the full operational detail, names and
// special requests included.
func FormatOverviewForStaff(data *models.ReservationOverview, now time.Time) string {
	if data == nil || data.LastUpdated == "never" || data.UpdatedBy == "none" {
		return "**STAFF RESERVATION OVERVIEW:**\n\nI don't have access to current reservation data. Please check the reservation system directly or contact IT support.\n\n**AVAILABLE ROOM CAPACITIES:**\n• Middle Room: 50 capacity\n• Back Room: 30 capacity\n• Front Room: 30 capacity\n• Beer Garden: 50 capacity\n"
	}

	var b strings.Builder
	b.WriteString("**STAFF RESERVATION OVERVIEW:**\n\n")

	today := now.Format("2006-01-02")
	todaysReservations := data.CurrentReservations[today]
	if len(todaysReservations) > 0 {
		b.WriteString("**TODAY'S RESERVATIONS:**\n")
		for _, res := range todaysReservations {
			fmt.Fprintf(&b, "• %s - %d guests in %s", res.Time, res.PartySize, res.Room)
			if res.Name != "" && res.Name != "Private" {
				fmt.Fprintf(&b, " (%s)", res.Name)
			}
			if res.SpecialRequests != "" {
				fmt.Fprintf(&b, " - %s", res.SpecialRequests)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("**TODAY'S RESERVATIONS:** No reservations scheduled\n\n")
	}

	b.WriteString("**ROOM STATUS:**\n")
	for _, room := range sortedKeys(data.RoomAvailability) {
		availability := data.RoomAvailability[room]
		fmt.Fprintf(&b, "• %s: %d booking(s) today, next available: %s\n",
			roomDisplayName(room), availability.CurrentBookingsToday, availability.NextAvailable)
	}

	stats := data.DailyStats.Today
	b.WriteString("\n**DAILY STATISTICS:**\n")
	fmt.Fprintf(&b, "• Total reservations: %d\n", stats.TotalReservations)
	fmt.Fprintf(&b, "• Total expected guests: %d\n", stats.TotalGuests)
	fmt.Fprintf(&b, "• Busiest time: %s\n", stats.BusiestTime)
	if len(stats.RoomsBooked) > 0 {
		sorted := append([]string(nil), stats.RoomsBooked...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, "• Rooms with bookings: %s\n", strings.Join(sorted, ", "))
	}

	if data.LastUpdated != "" && data.LastUpdated != "never" {
		fmt.Fprintf(&b, "\n**Data last updated:** %s\n", data.LastUpdated)
	}
	return b.String()
}

func roomDisplayName(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}
