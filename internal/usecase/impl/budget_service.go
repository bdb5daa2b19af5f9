package impl

import (
	"context"
	"log/slog"
	"strings"
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

// budgetService implements the BudgetUsecase interface.
type budgetService struct {
	budgetRepo    repository.BudgetRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// BudgetServiceParams holds dependencies for budgetService, injected by Fx.
type BudgetServiceParams struct {
	fx.In

	BudgetRepo    repository.BudgetRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewBudgetService is the constructor for budgetService.
func NewBudgetService(params BudgetServiceParams) usecase.BudgetUsecase {
	return &budgetService{
		budgetRepo:    params.BudgetRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *budgetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every budget category in the scope's namespace, preferring the cache.
func (srv *budgetService) List(ctx context.Context, scope entity.Scope) ([]*entity.BudgetCategory, error) {
	ns := scope.Namespace()

	var cached []*entity.BudgetCategory
	found, err := srv.cache.Get(ctx, ns, entity.DataBudget.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "budget cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	categories, err := srv.budgetRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budget categories")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataBudget, categories, srv.log(ctx))

	return categories, nil
}

// Create adds a spending bucket to the scope's budget.
func (srv *budgetService) Create(ctx context.Context, scope entity.Scope, input usecase.CreateBudgetCategoryInput) (*entity.BudgetCategory, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}
	if input.Allocated < 0 || input.Spent < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amounts cannot be negative")
	}

	category := &entity.BudgetCategory{
		Namespace: scope.Namespace(),
		Name:      input.Name,
		Allocated: input.Allocated,
		Spent:     input.Spent,
		Notes:     input.Notes,
	}

	if err := srv.budgetRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create budget category")
	}

	srv.afterWrite(ctx, scope)

	return category, nil
}

// Update applies a partial update to a budget category.
func (srv *budgetService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input usecase.UpdateBudgetCategoryInput) (*entity.BudgetCategory, error) {
	ns := scope.Namespace()

	category, err := srv.budgetRepo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, repository.ErrBudgetCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("budget category not found")
		}

		return nil, errors.Wrap(err, "failed to load budget category")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("category name cannot be empty")
		}
		category.Name = *input.Name
	}
	if input.Allocated != nil {
		if *input.Allocated < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("allocation cannot be negative")
		}
		category.Allocated = *input.Allocated
	}
	if input.Spent != nil {
		if *input.Spent < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("spend cannot be negative")
		}
		category.Spent = *input.Spent
	}
	if input.Notes != nil {
		category.Notes = *input.Notes
	}
	category.UpdatedAt = time.Now()

	if err := srv.budgetRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrBudgetCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("budget category not found")
		}

		return nil, errors.Wrap(err, "failed to update budget category")
	}

	srv.afterWrite(ctx, scope)

	return category, nil
}

// Delete removes a budget category from the scope's namespace.
func (srv *budgetService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := srv.budgetRepo.Delete(ctx, scope.Namespace(), id); err != nil {
		if errors.Is(err, repository.ErrBudgetCategoryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("budget category not found")
		}

		return errors.Wrap(err, "failed to delete budget category")
	}

	srv.afterWrite(ctx, scope)

	return nil
}

// Summary aggregates allocation and spend across the scope's categories.
func (srv *budgetService) Summary(ctx context.Context, scope entity.Scope) (*entity.BudgetSummary, error) {
	categories, err := srv.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	summary := &entity.BudgetSummary{Categories: len(categories)}
	for _, c := range categories {
		summary.TotalAllocated += c.Allocated
		summary.TotalSpent += c.Spent
	}
	summary.Remaining = summary.TotalAllocated - summary.TotalSpent

	return summary, nil
}

// SetAllocation creates or updates the named category's allocation. The name
// match is case-insensitive so that spoken commands land on existing buckets.
func (srv *budgetService) SetAllocation(ctx context.Context, scope entity.Scope, name string, amount float64) (*entity.BudgetCategory, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}
	if amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("allocation cannot be negative")
	}

	categories, err := srv.budgetRepo.ListByNamespace(ctx, scope.Namespace())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budget categories")
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			c.Allocated = amount
			c.UpdatedAt = time.Now()
			if err := srv.budgetRepo.Update(ctx, c); err != nil {
				return nil, errors.Wrap(err, "failed to update allocation")
			}

			srv.afterWrite(ctx, scope)

			return c, nil
		}
	}

	category := &entity.BudgetCategory{
		Namespace: scope.Namespace(),
		Name:      name,
		Allocated: amount,
	}
	if err := srv.budgetRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create budget category")
	}

	srv.afterWrite(ctx, scope)

	return category, nil
}

func (srv *budgetService) afterWrite(ctx context.Context, scope entity.Scope) {
	invalidateCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataBudget, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))
}
