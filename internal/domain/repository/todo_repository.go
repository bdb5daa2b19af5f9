package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when a task does not exist in the namespace.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the interface for planning task persistence.
type TodoRepository interface {
	// ListByNamespace retrieves all tasks in a namespace.
	ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Todo, error)

	// FindByID retrieves a task by ID within a namespace.
	FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Todo, error)

	// Create persists a new task.
	Create(ctx context.Context, todo *entity.Todo) error

	// Update modifies an existing task within its namespace.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a task by ID within a namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every task in a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
