package impl

import (
	"context"
	"fmt"
	"log/slog"

	"vivaha/internal/assistant"
	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// overallBudgetName is the bucket "set my budget to 20000" lands in when no
// category is spoken.
const overallBudgetName = "Overall"

// assistantSystemPrompt frames the conversational model for messages the
// command parser cannot handle.
const assistantSystemPrompt = "You are a friendly, practical wedding planning assistant. " +
	"Give short, concrete answers about guest lists, budgets, timelines, vendors, and etiquette. " +
	"If the user asks for something unrelated to wedding planning, politely steer them back."

// assistantService implements the AssistantUsecase interface. Messages the
// parser recognizes are executed as real operations; everything else goes to
// the conversational model.
type assistantService struct {
	guests usecase.GuestUsecase
	budget usecase.BudgetUsecase
	todos  usecase.TodoUsecase
	client service.AssistantClient
	logger *slog.Logger
}

// AssistantServiceParams holds dependencies for assistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Guests usecase.GuestUsecase
	Budget usecase.BudgetUsecase
	Todos  usecase.TodoUsecase
	Client service.AssistantClient
	Logger *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		guests: params.Guests,
		budget: params.Budget,
		todos:  params.Todos,
		client: params.Client,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat handles one assistant turn for the scope's namespace.
func (srv *assistantService) Chat(ctx context.Context, scope entity.Scope, input usecase.ChatInput) (*usecase.ChatOutput, error) {
	if input.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	cmd := assistant.Parse(input.Message)

	switch cmd.Kind {
	case assistant.KindAddGuest:
		guest, err := srv.guests.Create(ctx, scope, usecase.CreateGuestInput{Name: cmd.GuestName})
		if err != nil {
			return nil, err
		}

		return &usecase.ChatOutput{
			Reply:  fmt.Sprintf("Added %s to your guest list.", guest.Name),
			Action: string(cmd.Kind),
		}, nil

	case assistant.KindSetBudget:
		name := cmd.Category
		if name == "" {
			name = overallBudgetName
		}
		category, err := srv.budget.SetAllocation(ctx, scope, name, cmd.Amount)
		if err != nil {
			return nil, err
		}

		return &usecase.ChatOutput{
			Reply:  fmt.Sprintf("Set the %s budget to $%.2f.", category.Name, category.Allocated),
			Action: string(cmd.Kind),
		}, nil

	case assistant.KindAddTodo:
		todo, err := srv.todos.Create(ctx, scope, usecase.CreateTodoInput{Title: cmd.TodoTitle})
		if err != nil {
			return nil, err
		}

		return &usecase.ChatOutput{
			Reply:  fmt.Sprintf("Added %q to your checklist.", todo.Title),
			Action: string(cmd.Kind),
		}, nil

	case assistant.KindNavigate:
		return &usecase.ChatOutput{
			Reply:  fmt.Sprintf("Taking you to %s.", cmd.Target),
			Action: string(cmd.Kind),
			Target: cmd.Target,
		}, nil
	}

	reply, err := srv.freeformReply(ctx, input)
	if err != nil {
		return nil, err
	}

	return &usecase.ChatOutput{Reply: reply}, nil
}

func (srv *assistantService) freeformReply(ctx context.Context, input usecase.ChatInput) (string, error) {
	messages := make([]service.AssistantMessage, 0, len(input.History)+1)
	messages = append(messages, input.History...)
	messages = append(messages, service.AssistantMessage{Role: "user", Content: input.Message})

	reply, err := srv.client.Complete(ctx, assistantSystemPrompt, messages)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "assistant completion failed", slog.Any("error", err))

		return "", domainerrors.ErrAssistantUnavailable.WrapMessage(errors.Cause(err).Error())
	}

	return reply, nil
}
