package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface.
type todoService struct {
	todoRepo      repository.TodoRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo      repository.TodoRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo:      params.TodoRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every planning task in the scope's namespace, preferring the cache.
func (srv *todoService) List(ctx context.Context, scope entity.Scope) ([]*entity.Todo, error) {
	ns := scope.Namespace()

	var cached []*entity.Todo
	found, err := srv.cache.Get(ctx, ns, entity.DataTodos.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "todo cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	todos, err := srv.todoRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataTodos, todos, srv.log(ctx))

	return todos, nil
}

// Create adds a planning task to the scope's checklist.
func (srv *todoService) Create(ctx context.Context, scope entity.Scope, input usecase.CreateTodoInput) (*entity.Todo, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("todo title is required")
	}

	todo := &entity.Todo{
		Namespace: scope.Namespace(),
		Title:     input.Title,
		Category:  input.Category,
		DueDate:   input.DueDate,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.afterWrite(ctx, scope)

	return todo, nil
}

// Update applies a partial update to a planning task.
func (srv *todoService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input usecase.UpdateTodoInput) (*entity.Todo, error) {
	ns := scope.Namespace()

	todo, err := srv.todoRepo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("todo not found")
		}

		return nil, errors.Wrap(err, "failed to load todo")
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("todo title cannot be empty")
		}
		todo.Title = *input.Title
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
	if input.Category != nil {
		todo.Category = *input.Category
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	todo.UpdatedAt = time.Now()

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("todo not found")
		}

		return nil, errors.Wrap(err, "failed to update todo")
	}

	srv.afterWrite(ctx, scope)

	return todo, nil
}

// Toggle flips a task's completion state.
func (srv *todoService) Toggle(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Todo, error) {
	ns := scope.Namespace()

	todo, err := srv.todoRepo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("todo not found")
		}

		return nil, errors.Wrap(err, "failed to load todo")
	}

	todo.Completed = !todo.Completed
	todo.UpdatedAt = time.Now()

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to toggle todo")
	}

	srv.afterWrite(ctx, scope)

	return todo, nil
}

// Delete removes a planning task from the scope's namespace.
func (srv *todoService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := srv.todoRepo.Delete(ctx, scope.Namespace(), id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("todo not found")
		}

		return errors.Wrap(err, "failed to delete todo")
	}

	srv.afterWrite(ctx, scope)

	return nil
}

func (srv *todoService) afterWrite(ctx context.Context, scope entity.Scope) {
	invalidateCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataTodos, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))
}
