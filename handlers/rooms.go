package handlers

import (
	"net/http"

	"bot9palace/services/hotel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomsHandler exposes the room inventory directly, outside the chat flow.
type RoomsHandler struct {
	Hotel  hotel.HotelService
	Logger *zap.Logger
}

func NewRoomsHandler(svc hotel.HotelService, logger *zap.Logger) *RoomsHandler {
	return &RoomsHandler{Hotel: svc, Logger: logger}
}

// ListRoomsHandler returns the rooms currently open for booking.
func (h *RoomsHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Hotel.ListAvailableRooms(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
