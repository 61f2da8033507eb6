package handlers

import (
	"crypto/subtle"
	"net/http"

	"castlechat/config"
	"castlechat/models"
	"castlechat/services/concierge"
	"castlechat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffChatHandler exposes the staff-only concierge with access to the
// detailed reservation overview.
type StaffChatHandler struct {
	Concierge concierge.Service
}

func NewStaffChatHandler(svc concierge.Service) *StaffChatHandler {
	return &StaffChatHandler{Concierge: svc}
}

func (h *StaffChatHandler) Handle(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.StaffChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid staff chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: "Message is required and must be a string."})
		return
	}

	validKey := config.AppConfig.StaffAPIKey
	if validKey == "" || subtle.ConstantTimeCompare([]byte(req.StaffKey), []byte(validKey)) != 1 {
		c.JSON(http.StatusUnauthorized, models.ChatResponse{Error: "Unauthorized. Staff access required."})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: "Message is required and must be a string."})
		return
	}

	reply, err := h.Concierge.StaffReply(c.Request.Context(), req.Message, req.Conversation)
	if err != nil {
		logger.Error("Staff concierge reply failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{
			Error: "I'm having technical difficulties. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
