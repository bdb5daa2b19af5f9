package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	mockRepo "vivaha/internal/mocks/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTodoService(t *testing.T) (usecase.TodoUsecase, *mockRepo.MockTodoRepository) {
	todoRepo := mockRepo.NewMockTodoRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	svc := NewTodoService(TodoServiceParams{
		TodoRepo:      todoRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return svc, todoRepo
}

func TestTodoService_Create_RequiresTitle(t *testing.T) {
	svc, _ := newTodoService(t)

	_, err := svc.Create(context.Background(), entity.PersonalScope(uuid.New()), usecase.CreateTodoInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTodoService_Create_LandsInScopeNamespace(t *testing.T) {
	svc, todoRepo := newTodoService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	todoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Todo")).
		Return(nil)

	todo, err := svc.Create(ctx, scope, usecase.CreateTodoInput{Title: "Book the photographer"})
	require.NoError(t, err)
	assert.Equal(t, scope.Namespace(), todo.Namespace)
	assert.False(t, todo.Completed)
}

func TestTodoService_Toggle_FlipsCompletion(t *testing.T) {
	svc, todoRepo := newTodoService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	todoID := uuid.New()

	todoRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), todoID).
		Return(&entity.Todo{ID: todoID, Title: "Book the photographer", Completed: false}, nil)
	todoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Todo")).
		Return(nil)

	todo, err := svc.Toggle(ctx, scope, todoID)
	require.NoError(t, err)
	assert.True(t, todo.Completed)
	assert.False(t, todo.UpdatedAt.IsZero())
}

func TestTodoService_Update_EmptyTitleRejected(t *testing.T) {
	svc, todoRepo := newTodoService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	todoID := uuid.New()
	empty := ""

	todoRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), todoID).
		Return(&entity.Todo{ID: todoID, Title: "Book the photographer"}, nil)

	_, err := svc.Update(ctx, scope, todoID, usecase.UpdateTodoInput{Title: &empty})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTodoService_Delete_MissingTodo(t *testing.T) {
	svc, todoRepo := newTodoService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	todoID := uuid.New()

	todoRepo.EXPECT().
		Delete(ctx, scope.Namespace(), todoID).
		Return(repository.ErrTodoNotFound)

	err := svc.Delete(ctx, scope, todoID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTodoService_List_SecondCallServedFromCache(t *testing.T) {
	svc, todoRepo := newTodoService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	todoRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return([]*entity.Todo{{ID: uuid.New(), Title: "Book the photographer"}}, nil).
		Once()

	first, err := svc.List(ctx, scope)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, first[0].Title, second[0].Title)
}
