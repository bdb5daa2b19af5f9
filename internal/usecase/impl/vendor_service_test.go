package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	mockRepo "vivaha/internal/mocks/repository"
	mockSvc "vivaha/internal/mocks/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVendorService(t *testing.T) (usecase.VendorUsecase, *mockRepo.MockVendorRepository, *mockSvc.MockGeocoder) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	svc := NewVendorService(VendorServiceParams{
		VendorRepo:    vendorRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Geocoder:      geocoder,
		Logger:        testLogger(),
	})

	return svc, vendorRepo, geocoder
}

func TestVendorService_Create_DefaultsToFavorite(t *testing.T) {
	svc, vendorRepo, _ := newVendorService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	vendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	vendor, err := svc.Create(ctx, scope, usecase.CreateVendorInput{Name: "Garden Venue Co"})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorFavorite, vendor.Status)
	assert.Equal(t, scope.Namespace(), vendor.Namespace)
}

func TestVendorService_Create_RejectsNegativePrice(t *testing.T) {
	svc, _, _ := newVendorService(t)

	_, err := svc.Create(context.Background(), entity.PersonalScope(uuid.New()), usecase.CreateVendorInput{
		Name:  "Garden Venue Co",
		Price: -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_Locate_ResolvesLocation(t *testing.T) {
	svc, vendorRepo, geocoder := newVendorService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), vendorID).
		Return(&entity.Vendor{ID: vendorID, Name: "Garden Venue Co", Location: "Udaipur, India"}, nil)
	geocoder.EXPECT().
		Geocode(ctx, "Udaipur, India").
		Return(&service.GeoPoint{Latitude: 24.58, Longitude: 73.68, DisplayName: "Udaipur"}, nil)

	point, err := svc.Locate(ctx, scope, vendorID)
	require.NoError(t, err)
	assert.InDelta(t, 24.58, point.Latitude, 0.001)
}

func TestVendorService_Locate_NoLocationOnFile(t *testing.T) {
	svc, vendorRepo, _ := newVendorService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), vendorID).
		Return(&entity.Vendor{ID: vendorID, Name: "Garden Venue Co"}, nil)

	_, err := svc.Locate(ctx, scope, vendorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_Locate_UnresolvableLooksMissing(t *testing.T) {
	svc, vendorRepo, geocoder := newVendorService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), vendorID).
		Return(&entity.Vendor{ID: vendorID, Name: "Garden Venue Co", Location: "nowhere at all"}, nil)
	geocoder.EXPECT().
		Geocode(ctx, "nowhere at all").
		Return(nil, service.ErrNoGeocodeResult)

	_, err := svc.Locate(ctx, scope, vendorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVendorService_Delete_NotFound(t *testing.T) {
	svc, vendorRepo, _ := newVendorService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		Delete(ctx, scope.Namespace(), vendorID).
		Return(repository.ErrVendorNotFound)

	err := svc.Delete(ctx, scope, vendorID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
