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

type postRepository struct {
	db *surrealdb.DB
}

// NewPostRepository creates the SurrealDB-backed community post repository.
func NewPostRepository(db *surrealdb.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ListFeed(ctx context.Context, category entity.PostCategory, limit int) ([]*entity.Post, error) {
	query := "SELECT * FROM posts"
	params := map[string]any{}

	if category != "" {
		query += " WHERE category = $category"
		params["category"] = string(category)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT $limit"
		params["limit"] = limit
	}

	res, err := surrealdb.Query[[]model.PostDocument](ctx, r.db, query, params)
	if err != nil {
		return nil, errors.Wrap(err, "list feed")
	}

	docs := firstResult(res)
	posts := make([]*entity.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].ToEntity())
	}

	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	doc, err := surrealdb.Select[model.PostDocument](ctx, r.db, *model.NewRecordID(model.TablePosts, id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "find post by id")
	}
	if doc == nil {
		return nil, repository.ErrPostNotFound
	}

	return doc.ToEntity(), nil
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	if _, err := surrealdb.Create[model.PostDocument](ctx, r.db, model.TablePosts, model.PostFromEntity(post)); err != nil {
		return errors.Wrap(err, "create post")
	}

	return nil
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	post.UpdatedAt = time.Now()

	rid := model.NewRecordID(model.TablePosts, post.ID)
	if _, err := surrealdb.Update[model.PostDocument](ctx, r.db, *rid, model.PostFromEntity(post)); err != nil {
		if isNotFound(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "update post")
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.PostDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TablePosts, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete post")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (r *postRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE posts WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge posts")
	}

	return nil
}
