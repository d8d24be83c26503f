package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bot9palace/models"
	"bot9palace/utils"

	"go.uber.org/zap"
)

const defaultHistoryLimit = 30

// HandleMessage runs one conversation turn:
//
//	persist user entry -> load window -> completion round 1 ->
//	[dispatch action -> completion round 2] -> persist assistant entry.
//
// The user entry is committed before any model call, so a failed turn still
// leaves an unanswered user entry in the transcript.
func (s *DefaultAssistantService) HandleMessage(ctx context.Context, sessionID, message string) (string, error) {
	logger := utils.GetLogger()

	userEntry := models.TranscriptEntry{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   message,
		CreatedAt: time.Now(),
	}
	if _, err := s.Transcript.Append(ctx, userEntry); err != nil {
		return "", fmt.Errorf("persist user message: %w", err)
	}

	window, err := s.loadWindow(ctx, sessionID, userEntry)
	if err != nil {
		return "", err
	}

	prompt := buildPrompt(s.HotelName, window, message)

	first, err := s.Completion.Complete(ctx, prompt, declaredActions())
	if err != nil {
		return "", &CompletionError{Err: err}
	}

	reply := first.Text
	if first.Action != nil {
		logger.Debug("dispatching requested action",
			zap.String("sessionId", sessionID),
			zap.String("action", first.Action.Name))

		result, err := s.dispatch(ctx, first.Action)
		if err != nil {
			return "", err
		}
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("serialize %s result: %w", first.Action.Name, err)
		}

		followUp := make([]PromptMessage, 0, len(prompt)+2)
		followUp = append(followUp, prompt...)
		followUp = append(followUp,
			PromptMessage{Role: RoleAssistant, Content: first.Text, Action: first.Action},
			PromptMessage{
				Role:       RoleFunction,
				ActionName: first.Action.Name,
				ActionID:   first.Action.ID,
				Content:    string(resultJSON),
			},
		)

		// One action per turn: the follow-up round declares no actions and
		// its text is final.
		second, err := s.Completion.Complete(ctx, followUp, nil)
		if err != nil {
			return "", &CompletionError{Err: err}
		}
		if second.Action != nil {
			logger.Warn("ignoring action request in follow-up round",
				zap.String("sessionId", sessionID),
				zap.String("action", second.Action.Name))
		}
		reply = second.Text
	}

	replyEntry := models.TranscriptEntry{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if _, err := s.Transcript.Append(ctx, replyEntry); err != nil {
		return "", fmt.Errorf("persist assistant reply: %w", err)
	}
	s.storeWindow(ctx, sessionID, append(window, replyEntry))

	return reply, nil
}

func (s *DefaultAssistantService) historyLimit() int {
	if s.HistoryLimit > 0 {
		return s.HistoryLimit
	}
	return defaultHistoryLimit
}

// loadWindow returns the recent history window ending with the entry just
// appended. Cache hits extend the cached window locally; misses read back
// from the transcript store, which already contains the new entry.
func (s *DefaultAssistantService) loadWindow(ctx context.Context, sessionID string, userEntry models.TranscriptEntry) ([]models.TranscriptEntry, error) {
	limit := s.historyLimit()

	if s.History != nil {
		if cached, ok := s.History.Get(ctx, sessionID); ok {
			return trimWindow(append(cached, userEntry), limit), nil
		}
	}

	entries, err := s.Transcript.Recent(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("load history for session %s: %w", sessionID, err)
	}
	return entries, nil
}

func (s *DefaultAssistantService) storeWindow(ctx context.Context, sessionID string, window []models.TranscriptEntry) {
	if s.History == nil {
		return
	}
	s.History.Set(ctx, sessionID, trimWindow(window, s.historyLimit()))
}

func trimWindow(entries []models.TranscriptEntry, limit int) []models.TranscriptEntry {
	if len(entries) <= limit {
		return entries
	}
	return entries[len(entries)-limit:]
}
