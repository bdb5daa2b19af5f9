package usecase

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines the data required to add a planning task.
type CreateTodoInput struct {
	Title    string
	Category string
	DueDate  *time.Time
}

// UpdateTodoInput carries a partial task update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	Title     *string
	Completed *bool
	Category  *string
	DueDate   *time.Time
}

// TodoUsecase defines the business operations on the planning checklist.
type TodoUsecase interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.Todo, error)
	Create(ctx context.Context, scope entity.Scope, input CreateTodoInput) (*entity.Todo, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input UpdateTodoInput) (*entity.Todo, error)
	Toggle(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Todo, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}
