// File: services/assistant/openaiClient.go
package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient is the chat-completions backend with function calling.
type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{client: client, model: model}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []PromptMessage, actions []ActionDecl) (*Completion, error) {
	oaMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			oaMessages = append(oaMessages, openai.SystemMessage(msg.Content))
		case RoleUser:
			oaMessages = append(oaMessages, openai.UserMessage(msg.Content))
		case RoleAssistant:
			assistantMsg := openai.AssistantMessage(msg.Content)
			if msg.Action != nil && assistantMsg.OfAssistant != nil {
				assistantMsg.OfAssistant.ToolCalls = []openai.ChatCompletionMessageToolCallParam{{
					ID: msg.Action.ID,
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      msg.Action.Name,
						Arguments: msg.Action.Arguments,
					},
				}}
			}
			oaMessages = append(oaMessages, assistantMsg)
		case RoleFunction:
			oaMessages = append(oaMessages, openai.ToolMessage(msg.Content, msg.ActionID))
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages: oaMessages,
		Model:    openai.ChatModel(c.model),
	}

	if len(actions) > 0 {
		tools := make([]openai.ChatCompletionToolParam, 0, len(actions))
		for _, action := range actions {
			tools = append(tools, openai.ChatCompletionToolParam{
				Function: openai.FunctionDefinitionParam{
					Name:        action.Name,
					Description: openai.String(action.Description),
					Parameters:  openai.FunctionParameters(action.Parameters),
				},
			})
		}
		params.Tools = tools
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion: no choices returned")
	}

	choice := completion.Choices[0]
	result := &Completion{Text: choice.Message.Content}
	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		result.Action = &ActionRequest{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}
	return result, nil
}
