package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBudgetCategoryInput defines the data required to add a spending bucket.
type CreateBudgetCategoryInput struct {
	Name      string
	Allocated float64
	Spent     float64
	Notes     string
}

// UpdateBudgetCategoryInput carries a partial category update. Nil fields are
// left unchanged.
type UpdateBudgetCategoryInput struct {
	Name      *string
	Allocated *float64
	Spent     *float64
	Notes     *string
}

// BudgetUsecase defines the business operations on the wedding budget.
type BudgetUsecase interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.BudgetCategory, error)
	Create(ctx context.Context, scope entity.Scope, input CreateBudgetCategoryInput) (*entity.BudgetCategory, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input UpdateBudgetCategoryInput) (*entity.BudgetCategory, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	Summary(ctx context.Context, scope entity.Scope) (*entity.BudgetSummary, error)

	// SetAllocation creates or updates the named category's allocation.
	// The assistant uses this for "set the venue budget to 5000".
	SetAllocation(ctx context.Context, scope entity.Scope, name string, amount float64) (*entity.BudgetCategory, error)
}
