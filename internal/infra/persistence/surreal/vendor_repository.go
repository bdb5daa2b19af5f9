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

type vendorRepository struct {
	db *surrealdb.DB
}

// NewVendorRepository creates the SurrealDB-backed vendor repository.
func NewVendorRepository(db *surrealdb.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Vendor, error) {
	res, err := surrealdb.Query[[]model.VendorDocument](ctx, r.db,
		"SELECT * FROM vendors WHERE namespace = $ns ORDER BY created_at ASC",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list vendors")
	}

	docs := firstResult(res)
	vendors := make([]*entity.Vendor, 0, len(docs))
	for i := range docs {
		vendors = append(vendors, docs[i].ToEntity())
	}

	return vendors, nil
}

func (r *vendorRepository) FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Vendor, error) {
	res, err := surrealdb.Query[[]model.VendorDocument](ctx, r.db,
		"SELECT * FROM $rid WHERE namespace = $ns",
		map[string]any{
			"rid": model.NewRecordID(model.TableVendors, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return nil, errors.Wrap(err, "find vendor by id")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrVendorNotFound
	}

	return docs[0].ToEntity(), nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	now := time.Now()
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = now
	}
	vendor.UpdatedAt = now

	if _, err := surrealdb.Create[model.VendorDocument](ctx, r.db, model.TableVendors, model.VendorFromEntity(vendor)); err != nil {
		return errors.Wrap(err, "create vendor")
	}

	return nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	vendor.UpdatedAt = time.Now()

	res, err := surrealdb.Query[[]model.VendorDocument](ctx, r.db,
		"UPDATE $rid CONTENT $content WHERE namespace = $ns RETURN AFTER",
		map[string]any{
			"rid":     model.NewRecordID(model.TableVendors, vendor.ID),
			"content": model.VendorFromEntity(vendor),
			"ns":      vendor.Namespace.String(),
		})
	if err != nil {
		return errors.Wrap(err, "update vendor")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error {
	res, err := surrealdb.Query[[]model.VendorDocument](ctx, r.db,
		"DELETE $rid WHERE namespace = $ns RETURN BEFORE",
		map[string]any{
			"rid": model.NewRecordID(model.TableVendors, id),
			"ns":  ns.String(),
		})
	if err != nil {
		return errors.Wrap(err, "delete vendor")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (r *vendorRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE vendors WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge vendors")
	}

	return nil
}
