package service

import "context"

// AssistantMessage is one turn in an assistant conversation.
type AssistantMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// AssistantClient defines the interface for the conversational model backing
// the planning assistant. The command parser handles structured actions
// locally; this client covers everything the parser cannot.
type AssistantClient interface {
	// Complete sends the conversation to the model and returns its reply text.
	Complete(ctx context.Context, system string, messages []AssistantMessage) (string, error)
}
