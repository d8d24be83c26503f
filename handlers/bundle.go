package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the route handler functions wired up in main.
type HandlerBundle struct {
	// Chat endpoint.
	ChatHandler gin.HandlerFunc

	// Room inventory endpoints.
	ListRoomsHandler gin.HandlerFunc
}
