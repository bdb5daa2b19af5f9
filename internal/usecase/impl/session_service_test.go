package impl

import (
	"context"
	"testing"
	"time"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/infra/cache"
	mockRepo "vivaha/internal/mocks/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockWorkspaceRepository, service.CacheStore) {
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	store := cache.New(cache.NewMemoryStore(), time.Hour)
	svc := NewSessionService(SessionServiceParams{
		WorkspaceRepo: workspaceRepo,
		Cache:         store,
		Logger:        testLogger(),
	})

	return svc, workspaceRepo, store
}

func TestSessionService_SelectWorkspace_DeniedForNonMember(t *testing.T) {
	svc, workspaceRepo, _ := newSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	workspace := &entity.Workspace{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  entity.StatusPlanning,
	}

	workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil)

	err := svc.SelectWorkspace(ctx, userID, workspace.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceAccessDenied)
}

func TestSessionService_SelectWorkspace_RejectsArchived(t *testing.T) {
	svc, workspaceRepo, _ := newSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	workspace := &entity.Workspace{
		ID:      uuid.New(),
		OwnerID: userID,
		Status:  entity.StatusArchived,
	}

	workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil)

	err := svc.SelectWorkspace(ctx, userID, workspace.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceArchived)
}

func TestSessionService_ActiveScope_DefaultsToPersonal(t *testing.T) {
	svc, _, _ := newSessionService(t)

	userID := uuid.New()
	scope, err := svc.ActiveScope(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PersonalScope(userID), scope)
}

func TestSessionService_ActiveScope_RoundTrip(t *testing.T) {
	svc, workspaceRepo, _ := newSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	workspace := &entity.Workspace{
		ID:      uuid.New(),
		OwnerID: userID,
		Status:  entity.StatusPlanning,
	}

	workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil).
		Twice()

	require.NoError(t, svc.SelectWorkspace(ctx, userID, workspace.ID))

	scope, err := svc.ActiveScope(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkspaceScope(userID, workspace.ID), scope)
	assert.Equal(t, entity.WorkspaceNamespace(workspace.ID), scope.Namespace())
}

func TestSessionService_ActiveScope_FallsBackWhenWorkspaceGone(t *testing.T) {
	svc, workspaceRepo, store := newSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	workspaceID := uuid.New()

	require.NoError(t, store.SetWithTTL(ctx, entity.UserNamespace(userID), "activeWorkspace", workspaceID.String(), 0))

	workspaceRepo.EXPECT().
		FindByID(ctx, workspaceID).
		Return(nil, repository.ErrWorkspaceNotFound)

	scope, err := svc.ActiveScope(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PersonalScope(userID), scope)

	// The stale selection is dropped, so the next resolve skips the lookup.
	scope, err = svc.ActiveScope(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PersonalScope(userID), scope)
}

func TestSessionService_EndSession_PurgesPersonalCache(t *testing.T) {
	svc, _, store := newSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	ns := entity.UserNamespace(userID)

	require.NoError(t, store.Set(ctx, ns, "guests", []string{"cached"}))
	require.NoError(t, svc.EndSession(ctx, userID))

	var out []string
	found, err := store.Get(ctx, ns, "guests", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
