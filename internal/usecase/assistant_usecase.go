package usecase

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/service"
)

// ChatInput carries one assistant conversation turn.
type ChatInput struct {
	Message string
	History []service.AssistantMessage
}

// ChatOutput is the assistant's reply. When the message parsed into a
// structured command, Action names what was executed and Reply confirms it;
// otherwise Reply carries the conversational model's answer.
type ChatOutput struct {
	Reply  string
	Action string
	Target string
}

// AssistantUsecase defines the planning assistant's entry point. Structured
// commands (add a guest, set a budget, add a task, navigate) are executed
// directly; everything else is answered by the conversational model.
type AssistantUsecase interface {
	Chat(ctx context.Context, scope entity.Scope, input ChatInput) (*ChatOutput, error)
}
