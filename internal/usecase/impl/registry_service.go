package impl

import (
	"context"
	"log/slog"
	"net/url"

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

// registryService implements the RegistryUsecase interface.
type registryService struct {
	registryRepo  repository.RegistryRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// RegistryServiceParams holds dependencies for registryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	RegistryRepo  repository.RegistryRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		registryRepo:  params.RegistryRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every registry link in the scope's namespace, preferring the cache.
func (srv *registryService) List(ctx context.Context, scope entity.Scope) ([]*entity.Registry, error) {
	ns := scope.Namespace()

	var cached []*entity.Registry
	found, err := srv.cache.Get(ctx, ns, entity.DataRegistries.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "registry cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	registries, err := srv.registryRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registries")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataRegistries, registries, srv.log(ctx))

	return registries, nil
}

// Add links an external gift registry in the scope's namespace.
func (srv *registryService) Add(ctx context.Context, scope entity.Scope, input usecase.AddRegistryInput) (*entity.Registry, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registry name is required")
	}
	if input.URL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registry url is required")
	}
	if parsed, err := url.Parse(input.URL); err != nil || parsed.Host == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registry url must be absolute")
	}

	registryType := input.Type
	if registryType == "" {
		registryType = entity.RegistryOther
	}
	if !registryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown registry type")
	}

	registry := &entity.Registry{
		Namespace: scope.Namespace(),
		Name:      input.Name,
		Type:      registryType,
		URL:       input.URL,
		Notes:     input.Notes,
	}

	if err := srv.registryRepo.Create(ctx, registry); err != nil {
		return nil, errors.Wrap(err, "failed to add registry")
	}

	srv.afterWrite(ctx, scope)

	return registry, nil
}

// Remove unlinks a gift registry from the scope's namespace.
func (srv *registryService) Remove(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := srv.registryRepo.Delete(ctx, scope.Namespace(), id); err != nil {
		if errors.Is(err, repository.ErrRegistryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("registry not found")
		}

		return errors.Wrap(err, "failed to remove registry")
	}

	srv.afterWrite(ctx, scope)

	return nil
}

func (srv *registryService) afterWrite(ctx context.Context, scope entity.Scope) {
	invalidateCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataRegistries, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))
}
