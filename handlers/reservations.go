package handlers

import (
	"net/http"

	"castlechat/models"
	"castlechat/services/reservation"
	"castlechat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationChatHandler exposes the slot-filling reservation dialogue.
type ReservationChatHandler struct {
	Manager *reservation.Manager
	Store   reservation.SessionStore
}

func NewReservationChatHandler(manager *reservation.Manager, store reservation.SessionStore) *ReservationChatHandler {
	return &ReservationChatHandler{Manager: manager, Store: store}
}

// Handle processes one turn of a reservation conversation. The session is
// loaded (or created) by sessionId, advanced with the user's message, and
// persisted before the reply is returned.
func (h *ReservationChatHandler) Handle(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ReservationChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reservation chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.SessionID == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId and message are required"})
		return
	}

	state, err := h.Store.Get(c.Request.Context(), req.SessionID)
	if err != nil {
		logger.Error("Failed to load conversation session", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session storage unavailable"})
		return
	}
	if state == nil {
		state = models.NewConversationState()
	}

	reply := h.Manager.HandleInput(c.Request.Context(), state, req.Message)

	if err := h.Store.Set(c.Request.Context(), req.SessionID, state); err != nil {
		logger.Error("Failed to persist conversation session", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session storage unavailable"})
		return
	}

	c.JSON(http.StatusOK, models.ReservationChatResponse{Reply: reply, State: state})
}
