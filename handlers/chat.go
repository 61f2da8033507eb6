package handlers

import (
	"net/http"

	"castlechat/models"
	"castlechat/services/concierge"
	"castlechat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the guest-facing concierge chat.
type ChatHandler struct {
	Concierge concierge.Service
}

func NewChatHandler(svc concierge.Service) *ChatHandler {
	return &ChatHandler{Concierge: svc}
}

func (h *ChatHandler) Handle(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: "Message is required and must be a string."})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: "Message is required and must be a string."})
		return
	}

	reply, err := h.Concierge.GuestReply(c.Request.Context(), req.Message, req.Conversation)
	if err != nil {
		logger.Error("Concierge reply failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{
			Error: "I'm having technical difficulties. Give me a moment and try again.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
