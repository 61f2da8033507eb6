package models

// ChatMessage is one exchange in a concierge conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the chat widget into /api/chat.
type ChatRequest struct {
	Message      string        `json:"message"`
	Conversation []ChatMessage `json:"conversation,omitempty"`
}

// StaffChatRequest adds the shared staff key to a chat request.
type StaffChatRequest struct {
	Message      string        `json:"message"`
	Conversation []ChatMessage `json:"conversation,omitempty"`
	StaffKey     string        `json:"staffKey,omitempty"`
}

// ChatResponse is what the concierge handlers return to the frontend.
type ChatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// ReservationChatRequest is the payload for the reservation conversation.
type ReservationChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ReservationChatResponse carries the reply plus the updated dialogue state.
type ReservationChatResponse struct {
	Reply string             `json:"reply"`
	State *ConversationState `json:"state"`
}
