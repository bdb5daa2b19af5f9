package impl

import (
	"context"
	"testing"
	"time"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	mockRepo "vivaha/internal/mocks/repository"
	mockSvc "vivaha/internal/mocks/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workspaceServiceMocks struct {
	workspaceRepo *mockRepo.MockWorkspaceRepository
	userRepo      *mockRepo.MockUserRepository
	guestRepo     *mockRepo.MockGuestRepository
	budgetRepo    *mockRepo.MockBudgetRepository
	todoRepo      *mockRepo.MockTodoRepository
	registryRepo  *mockRepo.MockRegistryRepository
	vendorRepo    *mockRepo.MockVendorRepository
	seatingRepo   *mockRepo.MockSeatingRepository
	postRepo      *mockRepo.MockPostRepository
	qrService     *mockSvc.MockQRCodeService
}

func newWorkspaceService(t *testing.T) (usecase.WorkspaceUsecase, *workspaceServiceMocks) {
	m := &workspaceServiceMocks{
		workspaceRepo: mockRepo.NewMockWorkspaceRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		guestRepo:     mockRepo.NewMockGuestRepository(t),
		budgetRepo:    mockRepo.NewMockBudgetRepository(t),
		todoRepo:      mockRepo.NewMockTodoRepository(t),
		registryRepo:  mockRepo.NewMockRegistryRepository(t),
		vendorRepo:    mockRepo.NewMockVendorRepository(t),
		seatingRepo:   mockRepo.NewMockSeatingRepository(t),
		postRepo:      mockRepo.NewMockPostRepository(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
	}
	svc := NewWorkspaceService(WorkspaceServiceParams{
		WorkspaceRepo: m.workspaceRepo,
		UserRepo:      m.userRepo,
		GuestRepo:     m.guestRepo,
		BudgetRepo:    m.budgetRepo,
		TodoRepo:      m.todoRepo,
		RegistryRepo:  m.registryRepo,
		VendorRepo:    m.vendorRepo,
		SeatingRepo:   m.seatingRepo,
		PostRepo:      m.postRepo,
		Cache:         testCache(),
		QRService:     m.qrService,
		Logger:        testLogger(),
	})

	return svc, m
}

func TestWorkspaceService_Create_RequiresNameAndDate(t *testing.T) {
	svc, _ := newWorkspaceService(t)

	ctx := context.Background()

	_, err := svc.Create(ctx, usecase.CreateWorkspaceInput{
		OwnerID:     uuid.New(),
		WeddingDate: time.Now().AddDate(1, 0, 0),
	})
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceNameRequired)

	_, err = svc.Create(ctx, usecase.CreateWorkspaceInput{
		OwnerID: uuid.New(),
		Name:    "Sharma Wedding",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceDateRequired)
}

func TestWorkspaceService_Create_Defaults(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()

	m.workspaceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workspace")).
		Return(nil)

	workspace, err := svc.Create(ctx, usecase.CreateWorkspaceInput{
		OwnerID:     uuid.New(),
		Name:        "Sharma Wedding",
		WeddingDate: time.Now().AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WeddingSecular, workspace.WeddingType)
	assert.Equal(t, entity.StatusPlanning, workspace.Status)
	assert.False(t, workspace.LastActivity.IsZero())
}

func TestWorkspaceService_Get_DeniedForNonMember(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	workspace := &entity.Workspace{ID: uuid.New(), OwnerID: uuid.New()}

	m.workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil)

	_, err := svc.Get(ctx, uuid.New(), workspace.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWorkspaceAccessDenied)
}

func TestWorkspaceService_List_HidesArchivedByDefault(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.workspaceRepo.EXPECT().
		ListByMember(ctx, userID).
		Return([]*entity.Workspace{
			{ID: uuid.New(), OwnerID: userID, Name: "Active", Status: entity.StatusPlanning},
			{ID: uuid.New(), OwnerID: userID, Name: "Old", Status: entity.StatusArchived},
		}, nil).
		Twice()

	visible, err := svc.List(ctx, usecase.ListWorkspacesInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Active", visible[0].Name)

	all, err := svc.List(ctx, usecase.ListWorkspacesInput{UserID: userID, IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestWorkspaceService_Archive_SetsStatusAndTimestamp(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workspace := &entity.Workspace{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Sharma Wedding",
		Status:  entity.StatusPlanning,
	}

	m.workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil)
	m.workspaceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Workspace")).
		Return(nil)

	archived, err := svc.Archive(ctx, ownerID, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusArchived, archived.Status)
	require.NotNil(t, archived.ArchivedAt)
}

func TestWorkspaceService_Duplicate_CopiesSettingsNotData(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	source := &entity.Workspace{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Sharma Wedding",
		WeddingDate: time.Now().AddDate(0, 6, 0),
		WeddingType: entity.WeddingInterfaith,
		Status:      entity.StatusActive,
		Progress:    entity.ProgressMetrics{TasksTotal: 12, TasksCompleted: 5},
	}

	m.workspaceRepo.EXPECT().
		FindByID(ctx, source.ID).
		Return(source, nil)
	m.workspaceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workspace")).
		Return(nil)

	duplicate, err := svc.Duplicate(ctx, ownerID, source.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Wedding (Copy)", duplicate.Name)
	assert.Equal(t, entity.WeddingInterfaith, duplicate.WeddingType)
	assert.Equal(t, entity.StatusPlanning, duplicate.Status)
	assert.Zero(t, duplicate.Progress)
	assert.NotEqual(t, source.Namespace(), duplicate.Namespace())
}

func TestWorkspaceService_Delete_PurgesEveryCollection(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workspace := &entity.Workspace{ID: uuid.New(), OwnerID: ownerID, Name: "Doomed"}
	ns := workspace.Namespace()

	m.workspaceRepo.EXPECT().FindByID(ctx, workspace.ID).Return(workspace, nil)
	m.guestRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.budgetRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.todoRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.registryRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.vendorRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.seatingRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.postRepo.EXPECT().PurgeNamespace(ctx, ns).Return(nil)
	m.workspaceRepo.EXPECT().Delete(ctx, workspace.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, ownerID, workspace.ID))
}

func TestWorkspaceService_Delete_OnlyOwner(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	memberID := uuid.New()
	workspace := &entity.Workspace{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		TeamMembers: []entity.TeamMember{
			{UserID: memberID, Role: entity.TeamPlanner},
		},
	}

	m.workspaceRepo.EXPECT().
		FindByID(ctx, workspace.ID).
		Return(workspace, nil)

	err := svc.Delete(ctx, memberID, workspace.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWorkspaceService_RecomputeMetrics(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workspace := &entity.Workspace{ID: uuid.New(), OwnerID: ownerID}
	ns := workspace.Namespace()

	m.workspaceRepo.EXPECT().FindByID(ctx, workspace.ID).Return(workspace, nil)
	m.todoRepo.EXPECT().ListByNamespace(ctx, ns).Return([]*entity.Todo{
		{Title: "a", Completed: true},
		{Title: "b", Completed: true},
		{Title: "c"},
	}, nil)
	m.vendorRepo.EXPECT().ListByNamespace(ctx, ns).Return([]*entity.Vendor{
		{Name: "v1", Status: entity.VendorBooked},
		{Name: "v2", Status: entity.VendorContacted},
	}, nil)
	m.budgetRepo.EXPECT().ListByNamespace(ctx, ns).Return([]*entity.BudgetCategory{
		{Name: "Venue", Allocated: 9000},
		{Name: "Catering", Allocated: 4000},
	}, nil)
	m.workspaceRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Workspace")).Return(nil)

	updated, err := svc.RecomputeMetrics(ctx, ownerID, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Progress.TasksCompleted)
	assert.Equal(t, 3, updated.Progress.TasksTotal)
	assert.Equal(t, 1, updated.Progress.VendorsBooked)
	assert.Equal(t, float64(13000), updated.Progress.BudgetAllocated)
}

func TestWorkspaceService_InviteQR(t *testing.T) {
	svc, m := newWorkspaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	workspace := &entity.Workspace{ID: uuid.New(), OwnerID: ownerID}

	m.workspaceRepo.EXPECT().FindByID(ctx, workspace.ID).Return(workspace, nil)
	m.qrService.EXPECT().GenerateInviteQR(workspace.ID).Return([]byte("png-bytes"), nil)

	png, err := svc.InviteQR(ctx, ownerID, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
