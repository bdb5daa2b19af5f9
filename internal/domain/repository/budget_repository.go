package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrBudgetCategoryNotFound is returned when a budget category does not exist in the namespace.
var ErrBudgetCategoryNotFound = errors.New("budget category not found")

// BudgetRepository defines the interface for budget category persistence.
type BudgetRepository interface {
	// ListByNamespace retrieves all budget categories in a namespace.
	ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.BudgetCategory, error)

	// FindByID retrieves a budget category by ID within a namespace.
	FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.BudgetCategory, error)

	// Create persists a new budget category.
	Create(ctx context.Context, category *entity.BudgetCategory) error

	// Update modifies an existing budget category within its namespace.
	Update(ctx context.Context, category *entity.BudgetCategory) error

	// Delete removes a budget category by ID within a namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every budget category in a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
