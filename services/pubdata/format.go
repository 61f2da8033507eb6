package pubdata

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FormatMenu renders the menu and concept block for the system prompt.
func FormatMenu() string {
	var b strings.Builder
	b.WriteString("**MENU INFORMATION:**\n\n")

	b.WriteString("**CONCEPT:**\n")
	fmt.Fprintf(&b, "• Type: %s\n", menu.Concept.Type)
	fmt.Fprintf(&b, "• Specialties: %s\n", strings.Join(menu.Concept.Specialties, ", "))
	fmt.Fprintf(&b, "• Service Style: %s\n\n", menu.Concept.ServiceStyle)

	b.WriteString("**FOOD:**\n")
	fmt.Fprintf(&b, "• Specialty: %s\n", menu.Food.Specialty)
	fmt.Fprintf(&b, "• Style: %s\n", menu.Food.Style)
	fmt.Fprintf(&b, "• %s\n\n", menu.Food.Note)

	b.WriteString("**BEER:**\n")
	fmt.Fprintf(&b, "• Number of Taps: %d\n", menu.Beer.Taps.Count)
	fmt.Fprintf(&b, "• Beer Styles: %s\n", strings.Join(menu.Beer.Taps.Styles, ", "))
	fmt.Fprintf(&b, "• %s\n\n", menu.Beer.Taps.Note)

	b.WriteString("**LOCATION:**\n")
	fmt.Fprintf(&b, "• Address: %s\n", menu.Location.Address)
	fmt.Fprintf(&b, "• Area: %s\n", menu.Location.Area)
	fmt.Fprintf(&b, "• Features: %s\n", strings.Join(menu.Location.Features, ", "))

	return b.String()
}

// FormatHours renders the weekly opening hours block.
func FormatHours() string {
	var b strings.Builder
	b.WriteString("**OPENING HOURS:**\n\n")
	for _, day := range weekdays {
		h, ok := hours.OpeningHours[day]
		if !ok {
			continue
		}
		if h.Status == "closed" {
			fmt.Fprintf(&b, "%s: Closed\n", titleCase(day))
		} else {
			fmt.Fprintf(&b, "%s: %s - %s\n", titleCase(day), h.Open, h.Close)
		}
	}
	b.WriteString("\n**SPECIAL NOTES:**\n")
	for _, note := range hours.SpecialNotes {
		fmt.Fprintf(&b, "• %s\n", note)
	}
	return b.String()
}

// FormatEvents renders regular and special venue features.
func FormatEvents() string {
	var b strings.Builder
	b.WriteString("**VENUE FEATURES & INFORMATION:**\n\n")

	b.WriteString("**REGULAR FEATURES:**\n")
	for _, key := range sortedKeys(events.RegularFeatures) {
		f := events.RegularFeatures[key]
		fmt.Fprintf(&b, "• %s\n  %s\n", f.Name, f.Description)
		if f.Availability != "" {
			fmt.Fprintf(&b, "  Availability: %s\n", f.Availability)
		}
		if f.Seating != "" {
			fmt.Fprintf(&b, "  Seating: %s\n", f.Seating)
		}
		if f.Note != "" {
			fmt.Fprintf(&b, "  Note: %s\n", f.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString("**SPECIAL FEATURES:**\n")
	for _, key := range sortedKeys(events.SpecialFeatures) {
		f := events.SpecialFeatures[key]
		fmt.Fprintf(&b, "• %s\n  %s\n", f.Name, f.Description)
		if f.Rotation != "" {
			fmt.Fprintf(&b, "  %s\n", f.Rotation)
		}
		if f.Info != "" {
			fmt.Fprintf(&b, "  %s\n", f.Info)
		}
		if f.Style != "" {
			fmt.Fprintf(&b, "  Style: %s\n", f.Style)
		}
		b.WriteString("\n")
	}

	b.WriteString("**VENUE INFORMATION:**\n")
	fmt.Fprintf(&b, "• Atmosphere: %s\n", events.VenueInfo.Atmosphere)
	fmt.Fprintf(&b, "• Location: %s\n", events.VenueInfo.Location)
	fmt.Fprintf(&b, "• Specialties: %s\n", strings.Join(events.VenueInfo.Specialties, ", "))

	return b.String()
}

// FormatFAQ renders house rules, facilities, payment and location info.
func FormatFAQ() string {
	var b strings.Builder
	b.WriteString("**POLICIES & INFORMATION:**\n\n")

	b.WriteString("**HOUSE RULES:**\n")
	petWord := "Not allowed"
	if faq.HouseRules.Pets.Allowed {
		petWord = "Welcome!"
	}
	fmt.Fprintf(&b, "• Pets: %s %s\n", petWord, faq.HouseRules.Pets.Policy)
	if faq.HouseRules.Pets.Restrictions != "" {
		fmt.Fprintf(&b, "  Restriction: %s\n", faq.HouseRules.Pets.Restrictions)
	}
	fmt.Fprintf(&b, "• Smoking: %s\n", faq.HouseRules.Smoking.Policy)
	fmt.Fprintf(&b, "• Age: %s\n", faq.HouseRules.AgeRestrictions.Policy)
	fmt.Fprintf(&b, "• Dress Code: %s\n", faq.HouseRules.DressCode.Policy)

	b.WriteString("\n**FACILITIES:**\n")
	if faq.Facilities.WiFi.Available {
		fmt.Fprintf(&b, "• WiFi: Available - Network: %s\n", faq.Facilities.WiFi.Network)
	} else {
		b.WriteString("• WiFi: Not available\n")
	}
	if faq.Facilities.BeerGarden.Available {
		fmt.Fprintf(&b, "• Beer Garden: Yes - %s, %s\n", faq.Facilities.BeerGarden.Capacity, faq.Facilities.BeerGarden.Heating)
	} else {
		b.WriteString("• Beer Garden: Not available\n")
	}
	if faq.Facilities.Accessibility.WheelchairAccess {
		b.WriteString("• Accessibility: Wheelchair accessible\n")
	} else {
		b.WriteString("• Accessibility: Not wheelchair accessible\n")
	}

	b.WriteString("\n**PAYMENT & RESERVATIONS:**\n")
	fmt.Fprintf(&b, "• Payment methods: %s\n", strings.Join(faq.Payment.Methods, ", "))
	fmt.Fprintf(&b, "• Card minimum: %s\n", faq.Payment.MinimumCard)
	fmt.Fprintf(&b, "• Reservations: %s\n", faq.Reservations.Policy)
	fmt.Fprintf(&b, "• Large groups: %s\n", faq.Reservations.LargeGroups)

	b.WriteString("\n**LOCATION:**\n")
	fmt.Fprintf(&b, "• Address: %s\n", faq.LocationInfo.Address)
	fmt.Fprintf(&b, "• Transport: %s\n", faq.LocationInfo.NearestTransport)
	fmt.Fprintf(&b, "• Parking: %s\n", faq.LocationInfo.Parking)

	return b.String()
}

// FormatLoyalty renders the loyalty program block.
func FormatLoyalty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s:**\n\n", strings.ToUpper(loyalty.ProgramName))

	b.WriteString("**POINT SYSTEM:**\n")
	fmt.Fprintf(&b, "• Earning: %s\n", loyalty.PointSystem.EarningRate)
	fmt.Fprintf(&b, "• Happy Hour Bonus: %s\n", loyalty.PointSystem.BonusEarning.HappyHour)
	fmt.Fprintf(&b, "• Quiz Night Bonus: %s\n", loyalty.PointSystem.BonusEarning.QuizNight)
	fmt.Fprintf(&b, "• Birthday Bonus: %s\n", loyalty.PointSystem.BonusEarning.BirthdayMonth)

	b.WriteString("\n**REWARDS:**\n")
	for _, key := range sortedKeys(loyalty.Rewards) {
		r := loyalty.Rewards[key]
		fmt.Fprintf(&b, "• %s (%d points)\n  %s\n", r.Reward, r.PointsRequired, r.Description)
	}

	b.WriteString("\n**MEMBERSHIP TIERS:**\n")
	tiers := sortedKeys(loyalty.MembershipTiers)
	sort.Slice(tiers, func(i, j int) bool {
		return loyalty.MembershipTiers[tiers[i]].MinPoints < loyalty.MembershipTiers[tiers[j]].MinPoints
	})
	for _, tier := range tiers {
		info := loyalty.MembershipTiers[tier]
		fmt.Fprintf(&b, "• %s (%d+ points):\n", strings.ToUpper(tier), info.MinPoints)
		for _, benefit := range info.Benefits {
			fmt.Fprintf(&b, "  - %s\n", benefit)
		}
	}

	b.WriteString("\n**IMPORTANT NOTE:**\n")
	b.WriteString(loyalty.APIIntegration.Note + "\n")

	return b.String()
}

// FormatTimeContext renders the current day, time and open/closed status.
func FormatTimeContext(now time.Time) string {
	day := strings.ToLower(now.Weekday().String())
	todayHours, ok := hours.OpeningHours[day]

	status := "closed"
	hoursString := "Closed"
	if ok && todayHours.Status != "closed" {
		status = "open"
		hoursString = fmt.Sprintf("%s - %s", todayHours.Open, todayHours.Close)
	}

	return fmt.Sprintf("**CURRENT CONTEXT:**\nDay: %s\nTime: %s (Berlin time)\nStatus: Currently %s\nToday's hours: %s",
		titleCase(day), now.Format("15:04"), status, hoursString)
}

// FormatAll joins every static block into one system prompt section.
func FormatAll(now time.Time) string {
	return strings.Join([]string{
		FormatTimeContext(now),
		FormatHours(),
		FormatMenu(),
		FormatEvents(),
		FormatFAQ(),
		FormatLoyalty(),
	}, "\n\n---\n\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
