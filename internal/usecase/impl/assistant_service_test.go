package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/service"
	mockRepo "vivaha/internal/mocks/repository"
	mockSvc "vivaha/internal/mocks/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assistantServiceMocks struct {
	guestRepo  *mockRepo.MockGuestRepository
	budgetRepo *mockRepo.MockBudgetRepository
	todoRepo   *mockRepo.MockTodoRepository
	client     *mockSvc.MockAssistantClient
}

// newAssistantService wires the assistant over real collection services so
// parsed commands execute end to end against mocked repositories.
func newAssistantService(t *testing.T) (usecase.AssistantUsecase, *assistantServiceMocks) {
	m := &assistantServiceMocks{
		guestRepo:  mockRepo.NewMockGuestRepository(t),
		budgetRepo: mockRepo.NewMockBudgetRepository(t),
		todoRepo:   mockRepo.NewMockTodoRepository(t),
		client:     mockSvc.NewMockAssistantClient(t),
	}
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)

	guests := NewGuestService(GuestServiceParams{
		GuestRepo:     m.guestRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})
	budget := NewBudgetService(BudgetServiceParams{
		BudgetRepo:    m.budgetRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})
	todos := NewTodoService(TodoServiceParams{
		TodoRepo:      m.todoRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	svc := NewAssistantService(AssistantServiceParams{
		Guests: guests,
		Budget: budget,
		Todos:  todos,
		Client: m.client,
		Logger: testLogger(),
	})

	return svc, m
}

func TestAssistantService_Chat_AddGuestCommand(t *testing.T) {
	svc, m := newAssistantService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	var created *entity.Guest
	m.guestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Guest")).
		Run(func(_ context.Context, guest *entity.Guest) {
			created = guest
		}).
		Return(nil)

	out, err := svc.Chat(ctx, scope, usecase.ChatInput{Message: "Add Priya Sharma to the guest list"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Priya Sharma", created.Name)
	assert.Equal(t, scope.Namespace(), created.Namespace)
	assert.Equal(t, "Added Priya Sharma to your guest list.", out.Reply)
	assert.Equal(t, "add_guest", out.Action)
}

func TestAssistantService_Chat_SetBudgetDefaultsToOverall(t *testing.T) {
	svc, m := newAssistantService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	m.budgetRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return(nil, nil)

	var created *entity.BudgetCategory
	m.budgetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BudgetCategory")).
		Run(func(_ context.Context, category *entity.BudgetCategory) {
			created = category
		}).
		Return(nil)

	out, err := svc.Chat(ctx, scope, usecase.ChatInput{Message: "set my budget to $20,000"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Overall", created.Name)
	assert.Equal(t, float64(20000), created.Allocated)
	assert.Equal(t, "Set the Overall budget to $20000.00.", out.Reply)
	assert.Equal(t, "set_budget", out.Action)
}

func TestAssistantService_Chat_AddTodoCommand(t *testing.T) {
	svc, m := newAssistantService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	var created *entity.Todo
	m.todoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Todo")).
		Run(func(_ context.Context, todo *entity.Todo) {
			created = todo
		}).
		Return(nil)

	out, err := svc.Chat(ctx, scope, usecase.ChatInput{Message: "remind me to book the photographer"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "book the photographer", created.Title)
	assert.Equal(t, `Added "book the photographer" to your checklist.`, out.Reply)
	assert.Equal(t, "add_todo", out.Action)
}

func TestAssistantService_Chat_NavigateCommand(t *testing.T) {
	svc, _ := newAssistantService(t)

	out, err := svc.Chat(context.Background(), entity.PersonalScope(uuid.New()), usecase.ChatInput{
		Message: "show me the seating chart",
	})
	require.NoError(t, err)
	assert.Equal(t, "navigate", out.Action)
	assert.Equal(t, "seating", out.Target)
}

func TestAssistantService_Chat_FreeformFallsThroughToModel(t *testing.T) {
	svc, m := newAssistantService(t)

	ctx := context.Background()
	history := []service.AssistantMessage{
		{Role: "user", Content: "We want a winter wedding."},
		{Role: "assistant", Content: "Lovely, what month?"},
	}

	m.client.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(messages []service.AssistantMessage) bool {
			return len(messages) == 3 && messages[2].Content == "What flowers are in season in December?"
		})).
		Return("Amaryllis and ranunculus hold up well in December.", nil)

	out, err := svc.Chat(ctx, entity.PersonalScope(uuid.New()), usecase.ChatInput{
		Message: "What flowers are in season in December?",
		History: history,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amaryllis and ranunculus hold up well in December.", out.Reply)
	assert.Empty(t, out.Action)
}

func TestAssistantService_Chat_ModelOutage(t *testing.T) {
	svc, m := newAssistantService(t)

	ctx := context.Background()

	m.client.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), mock.Anything).
		Return("", errors.New("upstream timeout"))

	_, err := svc.Chat(ctx, entity.PersonalScope(uuid.New()), usecase.ChatInput{Message: "hello there"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}

func TestAssistantService_Chat_EmptyMessage(t *testing.T) {
	svc, _ := newAssistantService(t)

	_, err := svc.Chat(context.Background(), entity.PersonalScope(uuid.New()), usecase.ChatInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
