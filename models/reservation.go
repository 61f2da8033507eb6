package models

// Room is a bookable area of the pub as known to the booking backend.
type Room struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalCapacity int    `json:"total_capacity"`
}

// WorkingHours lists the bookable start times for one calendar date.
type WorkingHours struct {
	Open  string   `json:"open"`  // HH:MM
	Close string   `json:"close"` // HH:MM
	Slots []string `json:"slots"` // ["HH:MM", ...]
}

// AvailabilityRequest asks the booking backend whether a party fits a slot.
type AvailabilityRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	PartySize int    `json:"party_size"`
	RoomID    string `json:"room_id,omitempty"`
}

// Suggestion is an alternative time/room pair offered when a slot is taken.
type Suggestion struct {
	Time     string `json:"time"`
	RoomID   string `json:"room_id,omitempty"`
	RoomName string `json:"room_name,omitempty"`
}

// AvailabilityResult is the backend's answer to an availability check.
type AvailabilityResult struct {
	Available   bool         `json:"available"`
	Rooms       []Room       `json:"rooms"`
	Suggestions []Suggestion `json:"suggestions"`
}

// CreateReservationPayload carries all collected booking fields to the backend.
type CreateReservationPayload struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	PartySize       int    `json:"party_size"`
	ReservationType string `json:"reservation_type,omitempty"`
	Notes           string `json:"notes,omitempty"`
	RoomID          string `json:"room_id,omitempty"`
}

// ReservedTable is one table assigned to a created reservation.
type ReservedTable struct {
	TableName string `json:"table_name"`
	Capacity  int    `json:"capacity"`
}

// CreatedReservation is the durable record returned by the booking backend.
type CreatedReservation struct {
	ID       string          `json:"id"`
	Status   string          `json:"status"`
	RoomName string          `json:"room_name,omitempty"`
	Tables   []ReservedTable `json:"tables,omitempty"`
}
