package models

// MenuData describes the pub concept, food and beer offering plus location.
type MenuData struct {
	Concept struct {
		Type         string   `json:"type"`
		Specialties  []string `json:"specialties"`
		ServiceStyle string   `json:"service_style"`
	} `json:"concept"`
	Food struct {
		Specialty string `json:"specialty"`
		Style     string `json:"style"`
		Note      string `json:"note"`
	} `json:"food"`
	Beer struct {
		Taps struct {
			Count  int      `json:"count"`
			Styles []string `json:"styles"`
			Note   string   `json:"note"`
		} `json:"taps"`
	} `json:"beer"`
	Location struct {
		Address  string   `json:"address"`
		Area     string   `json:"area"`
		Features []string `json:"features"`
	} `json:"location"`
}

// DayHours is one weekday's opening window; Status is "open" or "closed".
type DayHours struct {
	Status string `json:"status"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// HoursData holds weekly opening hours keyed by lowercase day name.
type HoursData struct {
	OpeningHours map[string]DayHours `json:"opening_hours"`
	SpecialNotes []string            `json:"special_notes"`
}

// VenueFeature is a recurring or special feature of the venue.
type VenueFeature struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Availability string `json:"availability,omitempty"`
	Seating      string `json:"seating,omitempty"`
	Note         string `json:"note,omitempty"`
	Rotation     string `json:"rotation,omitempty"`
	Info         string `json:"info,omitempty"`
	Style        string `json:"style,omitempty"`
}

// EventsData describes venue features and atmosphere for the prompt context.
type EventsData struct {
	RegularFeatures map[string]VenueFeature `json:"regular_features"`
	SpecialFeatures map[string]VenueFeature `json:"special_features"`
	VenueInfo       struct {
		Atmosphere  string   `json:"atmosphere"`
		Location    string   `json:"location"`
		Specialties []string `json:"specialties"`
		EventsPage  string   `json:"events_page,omitempty"`
	} `json:"venue_info"`
}

// FAQData covers house rules, facilities, payment and location questions.
type FAQData struct {
	HouseRules struct {
		Pets struct {
			Allowed      bool   `json:"allowed"`
			Policy       string `json:"policy"`
			Restrictions string `json:"restrictions,omitempty"`
		} `json:"pets"`
		Smoking struct {
			Policy string `json:"policy"`
		} `json:"smoking"`
		AgeRestrictions struct {
			Policy string `json:"policy"`
		} `json:"age_restrictions"`
		DressCode struct {
			Policy string `json:"policy"`
		} `json:"dress_code"`
	} `json:"house_rules"`
	Facilities struct {
		WiFi struct {
			Available bool   `json:"available"`
			Network   string `json:"network,omitempty"`
		} `json:"wifi"`
		BeerGarden struct {
			Available bool   `json:"available"`
			Capacity  string `json:"capacity,omitempty"`
			Heating   string `json:"heating,omitempty"`
		} `json:"beer_garden"`
		Accessibility struct {
			WheelchairAccess bool `json:"wheelchair_access"`
		} `json:"accessibility"`
	} `json:"facilities"`
	Payment struct {
		Methods     []string `json:"methods"`
		MinimumCard string   `json:"minimum_card"`
	} `json:"payment"`
	Reservations struct {
		Policy      string `json:"policy"`
		LargeGroups string `json:"large_groups"`
	} `json:"reservations"`
	LocationInfo struct {
		Address          string `json:"address"`
		NearestTransport string `json:"nearest_transport"`
		Parking          string `json:"parking"`
	} `json:"location_info"`
}

// LoyaltyReward is one redeemable reward in the loyalty program.
type LoyaltyReward struct {
	Reward         string `json:"reward"`
	PointsRequired int    `json:"points_required"`
	Description    string `json:"description"`
}

// LoyaltyTier is one membership level and its benefits.
type LoyaltyTier struct {
	MinPoints int      `json:"min_points"`
	Benefits  []string `json:"benefits"`
}

// LoyaltyData describes the pub's loyalty program for the prompt context.
type LoyaltyData struct {
	ProgramName string `json:"program_name"`
	PointSystem struct {
		EarningRate  string `json:"earning_rate"`
		BonusEarning struct {
			HappyHour     string `json:"happy_hour"`
			QuizNight     string `json:"quiz_night"`
			BirthdayMonth string `json:"birthday_month"`
		} `json:"bonus_earning"`
	} `json:"point_system"`
	Rewards         map[string]LoyaltyReward `json:"rewards"`
	MembershipTiers map[string]LoyaltyTier   `json:"membership_tiers"`
	APIIntegration  struct {
		Note string `json:"note"`
	} `json:"api_integration"`
}

// Beer is one tap entry from the beer menu API.
type Beer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brewery     string  `json:"brewery"`
	Style       string  `json:"style"`
	ABV         float64 `json:"abv"`
	IBU         int     `json:"ibu,omitempty"`
	Price       string  `json:"price"`
	Description string  `json:"description,omitempty"`
	Available   bool    `json:"available"`
	TapNumber   int     `json:"tap_number,omitempty"`
}

// BeerMenu is the full tap list with freshness metadata.
type BeerMenu struct {
	Beers       []Beer `json:"beers"`
	LastUpdated string `json:"last_updated"`
	TotalTaps   int    `json:"total_taps"`
}

// OverviewReservation is one existing booking in the operational overview.
type OverviewReservation struct {
	Time            string `json:"time"`
	PartySize       int    `json:"party_size"`
	Room            string `json:"room"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// RoomOverview summarizes one room's bookings for the day.
type RoomOverview struct {
	Capacity             int    `json:"capacity"`
	CurrentBookingsToday int    `json:"current_bookings_today"`
	NextAvailable        string `json:"next_available"`
}

// ReservationOverview is the operational snapshot fed into staff prompts.
type ReservationOverview struct {
	CurrentReservations map[string][]OverviewReservation `json:"current_reservations"`
	RoomAvailability    map[string]RoomOverview          `json:"room_availability"`
	DailyStats          struct {
		Today struct {
			TotalReservations int      `json:"total_reservations"`
			TotalGuests       int      `json:"total_guests"`
			BusiestTime       string   `json:"busiest_time"`
			RoomsBooked       []string `json:"rooms_booked"`
		} `json:"today"`
	} `json:"daily_stats"`
	LastUpdated string `json:"last_updated"`
	UpdatedBy   string `json:"updated_by"`
}
