package models

// ChatRequest is the inbound payload of the chat endpoint.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// ChatResponse carries the assistant's final reply back to the caller.
type ChatResponse struct {
	Reply string `json:"reply"`
}
