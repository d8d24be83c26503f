package handlers

import (
	"net/http"

	"bot9palace/models"
	"bot9palace/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation endpoint.
type ChatHandler struct {
	Assistant assistant.AssistantService
	Logger    *zap.Logger
}

func NewChatHandler(svc assistant.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Assistant: svc, Logger: logger}
}

// HandleChat runs one conversation turn. Internal failures collapse to one
// opaque error; the caller never sees the taxonomy.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	reply, err := h.Assistant.HandleMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		h.Logger.Error("Chat turn failed",
			zap.String("sessionId", req.SessionID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}
