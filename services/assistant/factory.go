package assistant

import (
	"bot9palace/config"
)

// NewCompletionClientFromConfig selects the completion backend named by
// AI_PROVIDER. Anything other than "gemini" gets the OpenAI backend.
func NewCompletionClientFromConfig() CompletionClient {
	cfg := config.AppConfig
	if cfg.AIProvider == "gemini" {
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
}
