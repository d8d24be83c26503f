package models

import "time"

// Transcript entry roles. The store only ever sees these two; prompt-level
// roles (system, function) are derived per request and never persisted.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TranscriptEntry is one persisted turn half: a user message or an
// assistant reply, grouped by session. Entries are immutable once written
// and ordered by CreatedAt.
type TranscriptEntry struct {
	ID        string    `json:"id" bson:"id"`
	SessionID string    `json:"sessionId" bson:"sessionId"`
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
