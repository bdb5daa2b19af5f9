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

type todoRepository struct {
	db *surrealdb.DB
}

// NewTodoRepository creates the SurrealDB-backed planning task repository.
func NewTodoRepository(db *surrealdb.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Todo, error) {
	res, err := surrealdb.Query[[]model.TodoDocument](ctx, r.db,
		"SELECT * FROM todos WHERE namespace = $ns ORDER BY created_at ASC",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list todos")
	}

	docs := firstResult(res)
	todos := make([]*entity.Todo, 0, len(docs))
	for i := range docs {
		todos = append(todos, docs[i].ToEntity())
	}

	return todos, nil
}

func (r *todoRepository) FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Todo, error) {
	res, err := surrealdb.Query[[]model.TodoDocument](ctx, r.db,
		"SELECT * FROM $rid WHERE namespace = $ns",
		map[string]any{
			"rid": model.NewRecordID(model.TableTodos, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return nil, errors.Wrap(err, "find todo by id")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrTodoNotFound
	}

	return docs[0].ToEntity(), nil
}

func (r *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	now := time.Now()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	if _, err := surrealdb.Create[model.TodoDocument](ctx, r.db, model.TableTodos, model.TodoFromEntity(todo)); err != nil {
		return errors.Wrap(err, "create todo")
	}

	return nil
}

func (r *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todo.UpdatedAt = time.Now()

	res, err := surrealdb.Query[[]model.TodoDocument](ctx, r.db,
		"UPDATE $rid CONTENT $content WHERE namespace = $ns RETURN AFTER",
		map[string]any{
			"rid":     model.NewRecordID(model.TableTodos, todo.ID),
			"content": model.TodoFromEntity(todo),
			"ns":      todo.Namespace.String(),
		})
	if err != nil {
		return errors.Wrap(err, "update todo")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.TodoDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TableTodos, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete todo")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE todos WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge todos")
	}

	return nil
}
