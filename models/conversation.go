package models

// Conversation intents.
const (
	IntentReserve = "reserve"
	IntentIdle    = "idle"
)

// RoomChoice records the guest's room preference as an explicit three-state
// value: not yet asked, explicitly no preference, or a specific room.
type RoomChoice struct {
	Asked    bool   `json:"asked"`
	RoomID   string `json:"roomId,omitempty"` // empty with Asked=true means no preference
	RoomName string `json:"roomName,omitempty"`
}

// NoPreference reports whether the guest was asked and declined to pick a room.
func (r RoomChoice) NoPreference() bool {
	return r.Asked && r.RoomID == ""
}

// ConversationSlots holds the booking fields collected so far, in collection
// order. A zero value means the slot has not been filled yet.
type ConversationSlots struct {
	Date            string     `json:"date,omitempty"` // YYYY-MM-DD
	Time            string     `json:"time,omitempty"` // HH:MM (24h)
	PartySize       int        `json:"partySize,omitempty"`
	Room            RoomChoice `json:"room"`
	CustomerName    string     `json:"customerName,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ReservationType string     `json:"reservationType,omitempty"`
}

// ConversationState is the full state of one in-progress reservation dialogue.
// It is mutated one slot at a time across turns and cached per session.
type ConversationState struct {
	Intent        string            `json:"intent"`
	Slots         ConversationSlots `json:"slots"`
	Confirmed     bool              `json:"confirmed"`
	ReservationID string            `json:"reservationId,omitempty"`
	// IdempotencyKey is fixed on the first confirmation attempt so user
	// retries after a failure cannot double-book.
	IdempotencyKey string       `json:"idempotencyKey,omitempty"`
	Suggestions    []Suggestion `json:"suggestions,omitempty"`
	LastError      string       `json:"lastError,omitempty"`
	LastAPIError   string       `json:"lastApiError,omitempty"`
}

// NewConversationState creates the empty state for a fresh session.
func NewConversationState() *ConversationState {
	return &ConversationState{Intent: IntentReserve, Slots: ConversationSlots{}}
}
