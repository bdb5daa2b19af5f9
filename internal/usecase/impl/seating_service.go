package impl

import (
	"context"
	"log/slog"

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

// seatingService implements the SeatingUsecase interface.
type seatingService struct {
	seatingRepo   repository.SeatingRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// SeatingServiceParams holds dependencies for seatingService, injected by Fx.
type SeatingServiceParams struct {
	fx.In

	SeatingRepo   repository.SeatingRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewSeatingService is the constructor for seatingService.
func NewSeatingService(params SeatingServiceParams) usecase.SeatingUsecase {
	return &seatingService{
		seatingRepo:   params.SeatingRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *seatingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the scope's seating chart. A namespace that has never saved a
// chart gets an empty one rather than an error, so clients can render the
// editor without a separate existence check.
func (srv *seatingService) Get(ctx context.Context, scope entity.Scope) (*entity.SeatingChart, error) {
	ns := scope.Namespace()

	var cached entity.SeatingChart
	found, err := srv.cache.Get(ctx, ns, entity.DataSeating.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "seating cache read failed", slog.Any("error", err))
	}
	if found {
		return &cached, nil
	}

	chart, err := srv.seatingRepo.FindByNamespace(ctx, ns)
	if err != nil {
		if errors.Is(err, repository.ErrSeatingNotFound) {
			return &entity.SeatingChart{Namespace: ns, Tables: []entity.SeatingTable{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load seating chart")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataSeating, chart, srv.log(ctx))

	return chart, nil
}

// Save replaces the chart's table layout wholesale.
func (srv *seatingService) Save(ctx context.Context, scope entity.Scope, tables []entity.SeatingTable) (*entity.SeatingChart, error) {
	for i := range tables {
		if tables[i].Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("every table needs a name")
		}
		if tables[i].Capacity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("table capacity must be positive")
		}
		if len(tables[i].Guests) > tables[i].Capacity {
			return nil, domainerrors.ErrValidationFailed.WithDetails("table is seated beyond its capacity")
		}
		if tables[i].Shape == "" {
			tables[i].Shape = entity.ShapeRound
		}
		if tables[i].ID == "" {
			tables[i].ID = uuid.NewString()
		}
	}

	chart := &entity.SeatingChart{
		Namespace: scope.Namespace(),
		Tables:    tables,
	}

	if err := srv.seatingRepo.Save(ctx, chart); err != nil {
		return nil, errors.Wrap(err, "failed to save seating chart")
	}

	refreshCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataSeating, chart, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))

	return chart, nil
}
