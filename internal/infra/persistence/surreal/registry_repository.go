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

type registryRepository struct {
	db *surrealdb.DB
}

// NewRegistryRepository creates the SurrealDB-backed gift registry repository.
func NewRegistryRepository(db *surrealdb.DB) repository.RegistryRepository {
	return &registryRepository{db: db}
}

func (r *registryRepository) ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Registry, error) {
	res, err := surrealdb.Query[[]model.RegistryDocument](ctx, r.db,
		"SELECT * FROM registries WHERE namespace = $ns ORDER BY added_at ASC",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list registries")
	}

	docs := firstResult(res)
	registries := make([]*entity.Registry, 0, len(docs))
	for i := range docs {
		registries = append(registries, docs[i].ToEntity())
	}

	return registries, nil
}

func (r *registryRepository) Create(ctx context.Context, registry *entity.Registry) error {
	if registry.ID == uuid.Nil {
		registry.ID = uuid.New()
	}
	if registry.AddedAt.IsZero() {
		registry.AddedAt = time.Now()
	}

	if _, err := surrealdb.Create[model.RegistryDocument](ctx, r.db, model.TableRegistries, model.RegistryFromEntity(registry)); err != nil {
		return errors.Wrap(err, "create registry")
	}

	return nil
}

func (r *registryRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.RegistryDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TableRegistries, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete registry")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrRegistryNotFound
	}

	return nil
}

func (r *registryRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE registries WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge registries")
	}

	return nil
}
