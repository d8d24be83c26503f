package assistant

import (
	"testing"

	"bot9palace/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptMapsRoles(t *testing.T) {
	window := []models.TranscriptEntry{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hello!"},
		{Role: models.RoleUser, Content: "any rooms?"},
	}

	prompt := buildPrompt("Bot9 Palace", window, "any rooms?")
	require.Len(t, prompt, 4)
	assert.Equal(t, RoleSystem, prompt[0].Role)
	assert.Contains(t, prompt[0].Content, "Bot9 Palace")
	assert.Equal(t, RoleUser, prompt[1].Role)
	assert.Equal(t, RoleAssistant, prompt[2].Role)
	// The window already ends with the inbound message; no duplicate.
	assert.Equal(t, RoleUser, prompt[3].Role)
	assert.Equal(t, "any rooms?", prompt[3].Content)
}

func TestBuildPromptEmptyWindow(t *testing.T) {
	prompt := buildPrompt("Bot9 Palace", nil, "first message")
	require.Len(t, prompt, 2)
	assert.Equal(t, RoleSystem, prompt[0].Role)
	assert.Equal(t, RoleUser, prompt[1].Role)
	assert.Equal(t, "first message", prompt[1].Content)
}

func TestBuildPromptAppendsWhenWindowMissedMessage(t *testing.T) {
	window := []models.TranscriptEntry{
		{Role: models.RoleUser, Content: "older question"},
		{Role: models.RoleAssistant, Content: "older answer"},
	}

	prompt := buildPrompt("Bot9 Palace", window, "new question")
	require.Len(t, prompt, 4)
	assert.Equal(t, "new question", prompt[3].Content)
	assert.Equal(t, RoleUser, prompt[3].Role)
}

func TestSystemPromptMentionsRequiredFields(t *testing.T) {
	got := systemPrompt("Bot9 Palace")
	for _, field := range []string{"Full name", "Email address", "Room type", "Number of nights", "Check-in date"} {
		assert.Contains(t, got, field)
	}
}
