package assistant

import (
	"context"

	transcriptRepo "bot9palace/database/repository/transcript"
	"bot9palace/services/hotel"
	"bot9palace/services/notification"
)

// AssistantService turns one inbound user message into the final reply,
// persisting both transcript halves along the way.
type AssistantService interface {
	HandleMessage(ctx context.Context, sessionID, message string) (string, error)
}

// DefaultAssistantService implements AssistantService against the
// completion backend, the transcript store, the hotel backend and the
// booking mailer.
type DefaultAssistantService struct {
	Completion CompletionClient
	Transcript transcriptRepo.TranscriptRepository
	Hotel      hotel.HotelService
	Mailer     notification.BookingMailer
	History    HistoryStore

	HotelName    string
	HistoryLimit int
}
