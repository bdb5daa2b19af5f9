package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	mockRepo "vivaha/internal/mocks/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistryService(t *testing.T) (usecase.RegistryUsecase, *mockRepo.MockRegistryRepository) {
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	svc := NewRegistryService(RegistryServiceParams{
		RegistryRepo:  registryRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return svc, registryRepo
}

func TestRegistryService_Add_DefaultsToOtherType(t *testing.T) {
	svc, registryRepo := newRegistryService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	registryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Registry")).
		Return(nil)

	registry, err := svc.Add(ctx, scope, usecase.AddRegistryInput{
		Name: "Our Registry",
		URL:  "https://registry.example.com/sharma-patel",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegistryOther, registry.Type)
	assert.Equal(t, scope.Namespace(), registry.Namespace)
}

func TestRegistryService_Add_RejectsRelativeURL(t *testing.T) {
	svc, _ := newRegistryService(t)

	_, err := svc.Add(context.Background(), entity.PersonalScope(uuid.New()), usecase.AddRegistryInput{
		Name: "Our Registry",
		URL:  "/sharma-patel",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegistryService_Add_RejectsUnknownType(t *testing.T) {
	svc, _ := newRegistryService(t)

	_, err := svc.Add(context.Background(), entity.PersonalScope(uuid.New()), usecase.AddRegistryInput{
		Name: "Our Registry",
		URL:  "https://registry.example.com/sharma-patel",
		Type: entity.RegistryType("myspace"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegistryService_Remove_MissingRegistry(t *testing.T) {
	svc, registryRepo := newRegistryService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	registryID := uuid.New()

	registryRepo.EXPECT().
		Delete(ctx, scope.Namespace(), registryID).
		Return(repository.ErrRegistryNotFound)

	err := svc.Remove(ctx, scope, registryID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
