package handlers

// HandlerBundle groups the HTTP handlers so routing setup takes a single
// dependency.
type HandlerBundle struct {
	ReservationChat *ReservationChatHandler
	Chat            *ChatHandler
	StaffChat       *StaffChatHandler
}
