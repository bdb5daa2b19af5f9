package surreal

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/repository"
	"vivaha/internal/errors"
	"vivaha/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
)

type budgetRepository struct {
	db *surrealdb.DB
}

// NewBudgetRepository creates the SurrealDB-backed budget category repository.
func NewBudgetRepository(db *surrealdb.DB) repository.BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.BudgetCategory, error) {
	res, err := surrealdb.Query[[]model.BudgetCategoryDocument](ctx, r.db,
		"SELECT * FROM budget_categories WHERE namespace = $ns ORDER BY created_at ASC",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list budget categories")
	}

	docs := firstResult(res)
	categories := make([]*entity.BudgetCategory, 0, len(docs))
	for i := range docs {
		categories = append(categories, docs[i].ToEntity())
	}

	return categories, nil
}

func (r *budgetRepository) FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.BudgetCategory, error) {
	res, err := surrealdb.Query[[]model.BudgetCategoryDocument](ctx, r.db,
		"SELECT * FROM $rid WHERE namespace = $ns",
		map[string]any{
			"rid": model.NewRecordID(model.TableBudgetCategories, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return nil, errors.Wrap(err, "find budget category by id")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrBudgetCategoryNotFound
	}

	return docs[0].ToEntity(), nil
}

func (r *budgetRepository) Create(ctx context.Context, category *entity.BudgetCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = now

	if _, err := surrealdb.Create[model.BudgetCategoryDocument](ctx, r.db, model.TableBudgetCategories, model.BudgetCategoryFromEntity(category)); err != nil {
		return errors.Wrap(err, "create budget category")
	}

	return nil
}

func (r *budgetRepository) Update(ctx context.Context, category *entity.BudgetCategory) error {
	category.UpdatedAt = time.Now()

	res, err := surrealdb.Query[[]model.BudgetCategoryDocument](ctx, r.db,
		"UPDATE $rid CONTENT $content WHERE namespace = $ns RETURN AFTER",
		map[string]any{
			"rid":     model.NewRecordID(model.TableBudgetCategories, category.ID),
			"content": model.BudgetCategoryFromEntity(category),
			"ns":      category.Namespace.String(),
		})
	if err != nil {
		return errors.Wrap(err, "update budget category")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrBudgetCategoryNotFound
	}

	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.BudgetCategoryDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TableBudgetCategories, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete budget category")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrBudgetCategoryNotFound
	}

	return nil
}

func (r *budgetRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE budget_categories WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge budget categories")
	}

	return nil
}
