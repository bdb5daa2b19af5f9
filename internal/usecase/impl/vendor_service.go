package impl

import (
	"context"
	"log/slog"
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

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo    repository.VendorRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	geocoder      service.Geocoder
	logger        *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo    repository.VendorRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Geocoder      service.Geocoder
	Logger        *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:    params.VendorRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		geocoder:      params.Geocoder,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every tracked vendor in the scope's namespace, preferring the cache.
func (srv *vendorService) List(ctx context.Context, scope entity.Scope) ([]*entity.Vendor, error) {
	ns := scope.Namespace()

	var cached []*entity.Vendor
	found, err := srv.cache.Get(ctx, ns, entity.DataVendors.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "vendor cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	vendors, err := srv.vendorRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataVendors, vendors, srv.log(ctx))

	return vendors, nil
}

// Create starts tracking a vendor in the scope's namespace.
func (srv *vendorService) Create(ctx context.Context, scope entity.Scope, input usecase.CreateVendorInput) (*entity.Vendor, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vendor name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
	}

	status := input.Status
	if status == "" {
		status = entity.VendorFavorite
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vendor status")
	}

	vendor := &entity.Vendor{
		Namespace: scope.Namespace(),
		Name:      input.Name,
		Category:  input.Category,
		Status:    status,
		Price:     input.Price,
		Location:  input.Location,
		Notes:     input.Notes,
	}

	if err := srv.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor")
	}

	srv.afterWrite(ctx, scope)

	return vendor, nil
}

// Update applies a partial update to a tracked vendor.
func (srv *vendorService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input usecase.UpdateVendorInput) (*entity.Vendor, error) {
	ns := scope.Namespace()

	vendor, err := srv.vendorRepo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return nil, errors.Wrap(err, "failed to load vendor")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("vendor name cannot be empty")
		}
		vendor.Name = *input.Name
	}
	if input.Category != nil {
		vendor.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vendor status")
		}
		vendor.Status = *input.Status
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
		}
		vendor.Price = *input.Price
	}
	if input.Location != nil {
		vendor.Location = *input.Location
	}
	if input.Notes != nil {
		vendor.Notes = *input.Notes
	}
	vendor.UpdatedAt = time.Now()

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return nil, errors.Wrap(err, "failed to update vendor")
	}

	srv.afterWrite(ctx, scope)

	return vendor, nil
}

// Delete stops tracking a vendor in the scope's namespace.
func (srv *vendorService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := srv.vendorRepo.Delete(ctx, scope.Namespace(), id); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return errors.Wrap(err, "failed to delete vendor")
	}

	srv.afterWrite(ctx, scope)

	return nil
}

// Locate resolves a vendor's free-form location to map coordinates.
func (srv *vendorService) Locate(ctx context.Context, scope entity.Scope, id uuid.UUID) (*service.GeoPoint, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, scope.Namespace(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("vendor not found")
		}

		return nil, errors.Wrap(err, "failed to load vendor")
	}

	if vendor.Location == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vendor has no location on file")
	}

	point, err := srv.geocoder.Geocode(ctx, vendor.Location)
	if err != nil {
		if errors.Is(err, service.ErrNoGeocodeResult) {
			return nil, domainerrors.ErrNotFound.WrapMessage("location could not be resolved")
		}

		return nil, errors.Wrap(err, "failed to geocode vendor location")
	}

	return point, nil
}

func (srv *vendorService) afterWrite(ctx context.Context, scope entity.Scope) {
	invalidateCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataVendors, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))
}
