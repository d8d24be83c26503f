package assistant

import "context"

// Role of a prompt message. These are ephemeral, per-request roles; the
// transcript store only ever persists user/assistant.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// PromptMessage is one message of an assembled prompt. ActionName and
// ActionID are set on function-result messages; Action echoes the model's
// request on the assistant message that precedes a function result.
type PromptMessage struct {
	Role       Role
	Content    string
	ActionName string
	ActionID   string
	Action     *ActionRequest
}

// ActionDecl declares one invocable action to the model. Parameters is a
// JSON schema in map form, passed through to the backend SDK.
type ActionDecl struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ActionRequest is the model's structured intent to invoke an action.
// Arguments is the raw JSON payload as emitted by the model.
type ActionRequest struct {
	ID        string
	Name      string
	Arguments string
}

// Completion is one model reply: free text, optionally carrying a single
// action request.
type Completion struct {
	Text   string
	Action *ActionRequest
}

// CompletionClient wraps a single request/response call to an external
// language model.
type CompletionClient interface {
	Complete(ctx context.Context, messages []PromptMessage, actions []ActionDecl) (*Completion, error)
}
