package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/infra/cache"
	mockRepo "vivaha/internal/mocks/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCache() *cache.Store {
	return cache.New(cache.NewMemoryStore(), time.Hour)
}

func newGuestService(t *testing.T) (usecase.GuestUsecase, *mockRepo.MockGuestRepository, *mockRepo.MockWorkspaceRepository) {
	guestRepo := mockRepo.NewMockGuestRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	service := NewGuestService(GuestServiceParams{
		GuestRepo:     guestRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return service, guestRepo, workspaceRepo
}

func TestGuestService_Create_PersonalScope(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	guestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Guest")).
		Return(nil)

	guest, err := service.Create(ctx, scope, usecase.CreateGuestInput{Name: "Priya Sharma"})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", guest.Name)
	assert.Equal(t, scope.Namespace(), guest.Namespace)
	assert.Equal(t, entity.RSVPPending, guest.RSVP)
}

func TestGuestService_Create_RequiresName(t *testing.T) {
	service, _, _ := newGuestService(t)

	_, err := service.Create(context.Background(), entity.PersonalScope(uuid.New()), usecase.CreateGuestInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGuestService_Create_WorkspaceScopeBumpsActivity(t *testing.T) {
	service, guestRepo, workspaceRepo := newGuestService(t)

	ctx := context.Background()
	scope := entity.WorkspaceScope(uuid.New(), uuid.New())

	guestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Guest")).
		Return(nil)
	workspaceRepo.EXPECT().
		TouchActivity(ctx, scope.WorkspaceID, mock.AnythingOfType("time.Time")).
		Return(nil)

	guest, err := service.Create(ctx, scope, usecase.CreateGuestInput{Name: "Arjun"})
	require.NoError(t, err)
	assert.Equal(t, entity.WorkspaceNamespace(scope.WorkspaceID), guest.Namespace)
}

func TestGuestService_List_SecondReadServedFromCache(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	guestRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return([]*entity.Guest{{ID: uuid.New(), Name: "Mira", RSVP: entity.RSVPAttending}}, nil).
		Once()

	first, err := service.List(ctx, scope)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The repository expectation is Once; a second hit would fail the mock.
	second, err := service.List(ctx, scope)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Mira", second[0].Name)
}

func TestGuestService_Update_CrossNamespaceLooksMissing(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	guestID := uuid.New()

	guestRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), guestID).
		Return(nil, repository.ErrGuestNotFound)

	name := "Nobody"
	_, err := service.Update(ctx, scope, guestID, usecase.UpdateGuestInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGuestService_Update_AppliesPartialFields(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	guestID := uuid.New()

	existing := &entity.Guest{
		ID:        guestID,
		Namespace: scope.Namespace(),
		Name:      "Priya",
		RSVP:      entity.RSVPPending,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	guestRepo.EXPECT().
		FindByID(ctx, scope.Namespace(), guestID).
		Return(existing, nil)
	guestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Guest")).
		Return(nil)

	rsvp := entity.RSVPAttending
	updated, err := service.Update(ctx, scope, guestID, usecase.UpdateGuestInput{RSVP: &rsvp})
	require.NoError(t, err)
	assert.Equal(t, entity.RSVPAttending, updated.RSVP)
	assert.Equal(t, "Priya", updated.Name)
}

func TestGuestService_Stats(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	guestRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return([]*entity.Guest{
			{Name: "a", RSVP: entity.RSVPAttending},
			{Name: "b", RSVP: entity.RSVPAttending},
			{Name: "c", RSVP: entity.RSVPDeclined},
			{Name: "d", RSVP: entity.RSVPPending},
		}, nil)

	stats, err := service.Stats(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Attending)
	assert.Equal(t, 1, stats.Declined)
	assert.Equal(t, 1, stats.Pending)
}

func TestGuestService_Delete_NotFound(t *testing.T) {
	service, guestRepo, _ := newGuestService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	guestID := uuid.New()

	guestRepo.EXPECT().
		Delete(ctx, scope.Namespace(), guestID).
		Return(repository.ErrGuestNotFound)

	err := service.Delete(ctx, scope, guestID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
