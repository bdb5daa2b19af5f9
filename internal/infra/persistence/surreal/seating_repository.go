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

type seatingRepository struct {
	db *surrealdb.DB
}

// NewSeatingRepository creates the SurrealDB-backed seating chart repository.
func NewSeatingRepository(db *surrealdb.DB) repository.SeatingRepository {
	return &seatingRepository{db: db}
}

func (r *seatingRepository) FindByNamespace(ctx context.Context, ns entity.NamespaceKey) (*entity.SeatingChart, error) {
	res, err := surrealdb.Query[[]model.SeatingChartDocument](ctx, r.db,
		"SELECT * FROM seating_charts WHERE namespace = $ns LIMIT 1",
		map[string]any{"ns": ns.String()})
	if err != nil {
		return nil, errors.Wrap(err, "find seating chart")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrSeatingNotFound
	}

	return docs[0].ToEntity(), nil
}

// Save replaces the namespace's chart document wholesale. The chart keeps
// its original id and created_at across saves.
func (r *seatingRepository) Save(ctx context.Context, chart *entity.SeatingChart) error {
	now := time.Now()

	existing, err := r.FindByNamespace(ctx, chart.Namespace)
	switch {
	case err == nil:
		chart.ID = existing.ID
		chart.CreatedAt = existing.CreatedAt
		chart.UpdatedAt = now

		res, err := surrealdb.Query[[]model.SeatingChartDocument](ctx, r.db,
			"UPDATE $rid CONTENT $content WHERE namespace = $ns RETURN AFTER",
			map[string]any{
				"rid":     model.NewRecordID(model.TableSeatingCharts, chart.ID),
				"content": model.SeatingChartFromEntity(chart),
				"ns":      chart.Namespace.String(),
			})
		if err != nil {
			return errors.Wrap(err, "update seating chart")
		}
		if len(firstResult(res)) == 0 {
			return repository.ErrSeatingNotFound
		}

		return nil

	case errors.Is(err, repository.ErrSeatingNotFound):
		if chart.ID == uuid.Nil {
			chart.ID = uuid.New()
		}
		chart.CreatedAt = now
		chart.UpdatedAt = now

		if _, err := surrealdb.Create[model.SeatingChartDocument](ctx, r.db, model.TableSeatingCharts, model.SeatingChartFromEntity(chart)); err != nil {
			return errors.Wrap(err, "create seating chart")
		}

		return nil

	default:
		return err
	}
}

func (r *seatingRepository) PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error {
	if _, err := surrealdb.Query[any](ctx, r.db,
		"DELETE seating_charts WHERE namespace = $ns",
		map[string]any{"ns": ns.String()}); err != nil {
		return errors.Wrap(err, "purge seating charts")
	}

	return nil
}
