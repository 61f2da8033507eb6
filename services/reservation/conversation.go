package reservation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"castlechat/config"
	"castlechat/models"
	"castlechat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const replyAPIFailure = "I couldn't reach the booking system, please try again."

// Manager drives the slot-filling reservation dialogue. Each call to
// HandleInput consumes one user message, fills at most one slot, and
// returns the next prompt. All state lives in the ConversationState the
// caller passes in; the Manager itself is stateless and safe to share.
type Manager struct {
	Client Client
	Now    func() time.Time
	NewKey func() string
}

// NewManager builds a Manager with the pub-timezone clock and a UUID
// idempotency key generator.
func NewManager(client Client) *Manager {
	return &Manager{
		Client: client,
		Now:    pubNow,
		NewKey: func() string { return uuid.New().String() },
	}
}

func pubNow() time.Time {
	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// HandleInput advances the dialogue by one turn, mutating state in place.
// Booking-system failures never advance the state: the error text is kept
// in state.LastAPIError and the user is asked to retry the same turn.
func (m *Manager) HandleInput(ctx context.Context, state *models.ConversationState, input string) string {
	if state.Confirmed {
		return fmt.Sprintf("Your reservation is already booked (ID %s). Start a new chat to make another one.", state.ReservationID)
	}

	state.LastAPIError = ""
	state.LastError = ""

	switch {
	case state.Slots.Date == "":
		return m.fillDate(state, input)
	case state.Slots.Time == "":
		return m.fillTime(ctx, state, input)
	case state.Slots.PartySize == 0:
		return m.fillPartySize(ctx, state, input)
	case !state.Slots.Room.Asked:
		return m.fillRoom(ctx, state, input)
	case state.Slots.CustomerName == "":
		return m.fillName(state, input)
	case state.Slots.Email == "":
		return m.fillEmail(state, input)
	case state.Slots.Phone == "":
		return m.fillPhone(state, input)
	default:
		return m.handleSummary(ctx, state, input)
	}
}

func (m *Manager) fillDate(state *models.ConversationState, input string) string {
	now := m.Now()
	date := NormalizeDate(input, now)
	if date == "" {
		state.LastError = "unrecognized date"
		return "What date would you like to book? (e.g. \"tomorrow\", \"24.12\" or \"2025-12-24\")"
	}
	if !dateOnOrAfter(date, now) {
		state.LastError = "date in the past"
		return "That date is in the past. What date would you like to book?"
	}
	state.Slots.Date = date
	return "What time should I book? (e.g. \"19:00\" or \"7pm\")"
}

func (m *Manager) fillTime(ctx context.Context, state *models.ConversationState, input string) string {
	t := NormalizeTime(input)
	if t == "" {
		state.LastError = "unrecognized time"
		return "Sorry, I didn't catch the time. Try something like \"19:00\" or \"7pm\"."
	}

	hours, err := m.Client.GetWorkingHours(ctx, state.Slots.Date)
	if err != nil {
		return m.apiFailure(state, err)
	}
	if !containsSlot(hours.Slots, t) {
		state.LastError = "time outside working hours"
		return fmt.Sprintf("We're open %s-%s that day. Available times include: %s. Which time works?",
			hours.Open, hours.Close, strings.Join(sampleSlots(hours.Slots, 6), ", "))
	}

	if state.Slots.PartySize == 0 {
		state.Slots.Time = t
		return "How many people?"
	}

	// Party size is already known (the time is being re-entered), so the
	// availability check runs before the time is committed.
	res, err := m.Client.CheckAvailability(ctx, models.AvailabilityRequest{
		Date:      state.Slots.Date,
		Time:      t,
		PartySize: state.Slots.PartySize,
		RoomID:    state.Slots.Room.RoomID,
	})
	if err != nil {
		return m.apiFailure(state, err)
	}
	if !res.Available {
		return m.unavailableReply(state, res)
	}
	state.Slots.Time = t
	state.Suggestions = nil
	if !state.Slots.Room.Asked {
		return roomPromptText(res.Rooms)
	}
	return m.nextPrompt(state)
}

func (m *Manager) fillPartySize(ctx context.Context, state *models.ConversationState, input string) string {
	n := leadingInt(input)
	if n < 1 || n > 50 {
		state.LastError = "party size out of range"
		return "Please provide a party size between 1 and 50."
	}

	res, err := m.Client.CheckAvailability(ctx, models.AvailabilityRequest{
		Date:      state.Slots.Date,
		Time:      state.Slots.Time,
		PartySize: n,
		RoomID:    state.Slots.Room.RoomID,
	})
	if err != nil {
		return m.apiFailure(state, err)
	}
	state.Slots.PartySize = n
	if !res.Available {
		state.Slots.Time = ""
		return m.unavailableReply(state, res)
	}
	state.Suggestions = nil
	if !state.Slots.Room.Asked {
		return roomPromptText(res.Rooms)
	}
	return m.nextPrompt(state)
}

func (m *Manager) fillRoom(ctx context.Context, state *models.ConversationState, input string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "no preference" || in == "no" || in == "none" || in == "any" {
		state.Slots.Room = models.RoomChoice{Asked: true}
		return m.nextPrompt(state)
	}

	rooms, err := m.Client.GetRooms(ctx)
	if err != nil {
		return m.apiFailure(state, err)
	}
	for _, r := range rooms {
		if strings.ToLower(r.Name) == in {
			state.Slots.Room = models.RoomChoice{Asked: true, RoomID: r.ID, RoomName: r.Name}
			return m.nextPrompt(state)
		}
	}
	state.LastError = "unknown room"
	return fmt.Sprintf("I don't know that room. Our rooms are: %s. Pick one or say \"no preference\".",
		strings.Join(roomNames(rooms), ", "))
}

func (m *Manager) fillName(state *models.ConversationState, input string) string {
	name := strings.TrimSpace(input)
	if len(name) < 2 {
		return "What name should I put on the reservation?"
	}
	state.Slots.CustomerName = name
	return "Your email?"
}

func (m *Manager) fillEmail(state *models.ConversationState, input string) string {
	email := strings.TrimSpace(input)
	at := strings.Index(email, "@")
	if at < 1 || !strings.Contains(email[at:], ".") || strings.ContainsAny(email, " \t") {
		return "That email doesn't look right. Could you re-type it?"
	}
	state.Slots.Email = email
	return "Your phone number?"
}

func (m *Manager) fillPhone(state *models.ConversationState, input string) string {
	phone := strings.TrimSpace(input)
	if len(phone) < 5 {
		return "That phone number looks too short. Could you re-type it?"
	}
	state.Slots.Phone = phone
	return m.summaryReply(state)
}

func (m *Manager) handleSummary(ctx context.Context, state *models.ConversationState, input string) string {
	in := strings.ToLower(strings.TrimSpace(input))
	switch {
	case in == "confirm" || in == "book" || in == "yes":
		return m.confirm(ctx, state)
	case strings.Contains(in, "date"):
		state.Slots.Date = ""
		state.Slots.Time = ""
		state.Suggestions = nil
		return "Okay, what date instead?"
	case strings.Contains(in, "time"):
		state.Slots.Time = ""
		state.Suggestions = nil
		return "Okay, what time instead?"
	case strings.Contains(in, "party") || strings.Contains(in, "people") || strings.Contains(in, "size"):
		state.Slots.PartySize = 0
		return "Okay, how many people?"
	case strings.Contains(in, "room"):
		state.Slots.Room = models.RoomChoice{}
		return "Okay, which room? Say \"no preference\" if any is fine."
	case strings.Contains(in, "name"):
		state.Slots.CustomerName = ""
		return "Okay, what name should I use?"
	case strings.Contains(in, "email") || strings.Contains(in, "mail"):
		state.Slots.Email = ""
		return "Okay, what's the right email?"
	case strings.Contains(in, "phone") || strings.Contains(in, "number"):
		state.Slots.Phone = ""
		return "Okay, what's the right phone number?"
	default:
		return "Sorry, I didn't catch that. Reply \"confirm\" to book, or tell me what to change (date, time, party size, room, name, email, phone)."
	}
}

func (m *Manager) confirm(ctx context.Context, state *models.ConversationState) string {
	payload := models.CreateReservationPayload{
		CustomerName:    state.Slots.CustomerName,
		Email:           state.Slots.Email,
		Phone:           state.Slots.Phone,
		Date:            state.Slots.Date,
		Time:            state.Slots.Time,
		PartySize:       state.Slots.PartySize,
		ReservationType: state.Slots.ReservationType,
		Notes:           state.Slots.Notes,
		RoomID:          state.Slots.Room.RoomID,
	}
	if payload.ReservationType == "" {
		payload.ReservationType = "regular"
	}

	// One key per logical booking; a retried "confirm" reuses it.
	if state.IdempotencyKey == "" {
		state.IdempotencyKey = m.NewKey()
	}

	created, err := m.Client.CreateReservation(ctx, payload, state.IdempotencyKey)
	if err != nil {
		return m.apiFailure(state, err)
	}

	state.Confirmed = true
	state.ReservationID = created.ID

	tables := "assigned on arrival"
	if len(created.Tables) > 0 {
		names := make([]string, 0, len(created.Tables))
		for _, t := range created.Tables {
			names = append(names, t.TableName)
		}
		tables = strings.Join(names, ", ")
	}
	room := created.RoomName
	if room == "" {
		room = "our main area"
	}
	utils.GetLogger().Info("reservation confirmed",
		zap.String("reservationId", created.ID),
		zap.String("date", state.Slots.Date),
		zap.String("time", state.Slots.Time),
		zap.Int("partySize", state.Slots.PartySize))
	return fmt.Sprintf("Booked! Your reservation ID is %s. You'll be in %s (tables: %s). A confirmation email is on its way to %s. See you on %s at %s!",
		created.ID, room, tables, state.Slots.Email, state.Slots.Date, state.Slots.Time)
}

func roomPromptText(rooms []models.Room) string {
	if len(rooms) == 0 {
		return "That works! Would you like a specific room? Say the room name or \"no preference\"."
	}
	return fmt.Sprintf("That works! Would you like a specific room? Options: %s (or say \"no preference\").",
		strings.Join(roomNames(rooms), ", "))
}

// nextPrompt asks for the first slot still missing after a successful
// availability check, or shows the summary when everything is filled.
func (m *Manager) nextPrompt(state *models.ConversationState) string {
	switch {
	case !state.Slots.Room.Asked:
		return "Would you like a specific room? Say the room name or \"no preference\"."
	case state.Slots.CustomerName == "":
		return "Great, that works! What name should I put on the reservation?"
	case state.Slots.Email == "":
		return "Your email?"
	case state.Slots.Phone == "":
		return "Your phone number?"
	default:
		return m.summaryReply(state)
	}
}

func (m *Manager) summaryReply(state *models.ConversationState) string {
	room := "No preference"
	if state.Slots.Room.RoomID != "" {
		room = state.Slots.Room.RoomName
		if room == "" {
			room = state.Slots.Room.RoomID
		}
	}
	return fmt.Sprintf("Please confirm: %s at %s for %d.\nName: %s\nEmail: %s\nPhone: %s\nRoom: %s\nReply \"confirm\" to book, or tell me what to change (date, time, party size, room, name, email, phone).",
		state.Slots.Date, state.Slots.Time, state.Slots.PartySize,
		state.Slots.CustomerName, state.Slots.Email, state.Slots.Phone, room)
}

func (m *Manager) unavailableReply(state *models.ConversationState, res models.AvailabilityResult) string {
	suggestions := res.Suggestions
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	state.Suggestions = suggestions
	if len(suggestions) == 0 {
		return "That time is fully booked and I have no alternatives nearby. Could you try another time?"
	}
	times := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		times = append(times, s.Time)
	}
	return fmt.Sprintf("That time is fully booked. Nearby options: %s. Pick one or give me another time.",
		strings.Join(times, ", "))
}

func (m *Manager) apiFailure(state *models.ConversationState, err error) string {
	state.LastAPIError = err.Error()
	utils.GetLogger().Warn("booking system call failed", zap.Error(err))
	return replyAPIFailure
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

func sampleSlots(slots []string, max int) []string {
	if len(slots) <= max {
		return slots
	}
	// Spread the sample across the whole day instead of taking the first few.
	out := make([]string, 0, max)
	step := float64(len(slots)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		out = append(out, slots[int(float64(i)*step+0.5)])
	}
	return out
}

func roomNames(rooms []models.Room) []string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return names
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
