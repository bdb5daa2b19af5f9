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

type guestRepository struct {
	db *surrealdb.DB
}

// NewGuestRepository creates the SurrealDB-backed guest repository.
// Every query carries the namespace predicate, so a guest outside the
// caller's namespace behaves exactly like a missing record.
func NewGuestRepository(db *surrealdb.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Guest, error) {
	res, err := surrealdb.Query[[]model.GuestDocument](ctx, r.db,
		"SELECT * FROM guests WHERE namespace = $ns ORDER BY created_at ASC",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list guests")
	}

	docs := firstResult(res)
	guests := make([]*entity.Guest, 0, len(docs))
	for i := range docs {
		guests = append(guests, docs[i].ToEntity())
	}

	return guests, nil
}

func (r *guestRepository) FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Guest, error) {
	res, err := surrealdb.Query[[]model.GuestDocument](ctx, r.db,
		"SELECT * FROM $rid WHERE namespace = $ns",
		map[string]any{
			"rid": model.NewRecordID(model.TableGuests, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return nil, errors.Wrap(err, "find guest by id")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrGuestNotFound
	}

	return docs[0].ToEntity(), nil
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	now := time.Now()
	if guest.CreatedAt.IsZero() {
		guest.CreatedAt = now
	}
	guest.UpdatedAt = now

	if _, err := surrealdb.Create[model.GuestDocument](ctx, r.db, model.TableGuests, model.GuestFromEntity(guest)); err != nil {
		return errors.Wrap(err, "create guest")
	}

	return nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	guest.UpdatedAt = time.Now()

	res, err := surrealdb.Query[[]model.GuestDocument](ctx, r.db,
		"UPDATE $rid CONTENT $content WHERE namespace = $ns RETURN AFTER",
		map[string]any{
			"rid":     model.NewRecordID(model.TableGuests, guest.ID),
			"content": model.GuestFromEntity(guest),
			"ns":      guest.Namespace.String(),
		})
	if err != nil {
		return errors.Wrap(err, "update guest")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

func (r *guestRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.GuestDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TableGuests, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete guest")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

func (r *guestRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE guests WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge guests")
	}

	return nil
}
