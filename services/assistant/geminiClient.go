// File: services/assistant/geminiClient.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient is the Gemini backend. Actions map onto function
// declarations; function results travel back as FunctionResponse parts.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &GeminiClient{client: client, modelName: modelName}
}

func (g *GeminiClient) Complete(ctx context.Context, messages []PromptMessage, actions []ActionDecl) (*Completion, error) {
	model := g.client.GenerativeModel(g.modelName)

	var history []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(msg.Content)}}
		case RoleUser:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		case RoleAssistant:
			var parts []genai.Part
			if msg.Content != "" {
				parts = append(parts, genai.Text(msg.Content))
			}
			if msg.Action != nil {
				var args map[string]any
				if err := json.Unmarshal([]byte(msg.Action.Arguments), &args); err != nil {
					args = map[string]any{}
				}
				parts = append(parts, genai.FunctionCall{Name: msg.Action.Name, Args: args})
			}
			if len(parts) == 0 {
				parts = append(parts, genai.Text(""))
			}
			history = append(history, &genai.Content{Role: "model", Parts: parts})
		case RoleFunction:
			history = append(history, &genai.Content{
				Role: "function",
				Parts: []genai.Part{genai.FunctionResponse{
					Name:     msg.ActionName,
					Response: decodeFunctionResponse(msg.Content),
				}},
			})
		}
	}

	if len(history) == 0 {
		return nil, fmt.Errorf("gemini completion: empty prompt")
	}

	if len(actions) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(actions))
		for _, action := range actions {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        action.Name,
				Description: action.Description,
				Parameters:  schemaFromMap(action.Parameters),
			})
		}
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	cs := model.StartChat()
	last := history[len(history)-1]
	cs.History = history[:len(history)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini generate error: no candidates returned")
	}

	result := &Completion{}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			if result.Action == nil {
				args, err := json.Marshal(p.Args)
				if err != nil {
					return nil, fmt.Errorf("gemini function call arguments: %w", err)
				}
				result.Action = &ActionRequest{Name: p.Name, Arguments: string(args)}
			}
		}
	}
	result.Text = sb.String()
	return result, nil
}

// decodeFunctionResponse turns the serialized action result into the map
// payload Gemini expects; non-object results are wrapped.
func decodeFunctionResponse(serialized string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(serialized), &obj); err == nil {
		return obj
	}
	var v any
	if err := json.Unmarshal([]byte(serialized), &v); err != nil {
		v = serialized
	}
	return map[string]any{"result": v}
}

func schemaFromMap(m map[string]any) *genai.Schema {
	if m == nil {
		return nil
	}
	schema := &genai.Schema{}

	if t, ok := m["type"].(string); ok {
		switch t {
		case "object":
			schema.Type = genai.TypeObject
		case "string":
			schema.Type = genai.TypeString
		case "integer":
			schema.Type = genai.TypeInteger
		case "number":
			schema.Type = genai.TypeNumber
		case "boolean":
			schema.Type = genai.TypeBoolean
		case "array":
			schema.Type = genai.TypeArray
		}
	}
	if d, ok := m["description"].(string); ok {
		schema.Description = d
	}
	if props, ok := m["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				schema.Properties[name] = schemaFromMap(sub)
			}
		}
	}
	switch req := m["required"].(type) {
	case []string:
		schema.Required = req
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}
	return schema
}
