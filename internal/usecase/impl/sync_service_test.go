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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type syncServiceMocks struct {
	guestRepo     *mockRepo.MockGuestRepository
	budgetRepo    *mockRepo.MockBudgetRepository
	todoRepo      *mockRepo.MockTodoRepository
	registryRepo  *mockRepo.MockRegistryRepository
	vendorRepo    *mockRepo.MockVendorRepository
	seatingRepo   *mockRepo.MockSeatingRepository
	userRepo      *mockRepo.MockUserRepository
	workspaceRepo *mockRepo.MockWorkspaceRepository
}

func newSyncService(t *testing.T) (usecase.SyncUsecase, *syncServiceMocks) {
	m := &syncServiceMocks{
		guestRepo:     mockRepo.NewMockGuestRepository(t),
		budgetRepo:    mockRepo.NewMockBudgetRepository(t),
		todoRepo:      mockRepo.NewMockTodoRepository(t),
		registryRepo:  mockRepo.NewMockRegistryRepository(t),
		vendorRepo:    mockRepo.NewMockVendorRepository(t),
		seatingRepo:   mockRepo.NewMockSeatingRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		workspaceRepo: mockRepo.NewMockWorkspaceRepository(t),
	}
	svc := NewSyncService(SyncServiceParams{
		GuestRepo:     m.guestRepo,
		BudgetRepo:    m.budgetRepo,
		TodoRepo:      m.todoRepo,
		RegistryRepo:  m.registryRepo,
		VendorRepo:    m.vendorRepo,
		SeatingRepo:   m.seatingRepo,
		UserRepo:      m.userRepo,
		WorkspaceRepo: m.workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return svc, m
}

func TestSyncService_Sync_FullSnapshot(t *testing.T) {
	svc, m := newSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	scope := entity.PersonalScope(userID)
	ns := scope.Namespace()

	m.guestRepo.EXPECT().ListByNamespace(ctx, ns).
		Return([]*entity.Guest{{Name: "Priya"}}, nil)
	m.budgetRepo.EXPECT().ListByNamespace(ctx, ns).
		Return([]*entity.BudgetCategory{{Name: "Venue", Allocated: 9000}}, nil)
	m.todoRepo.EXPECT().ListByNamespace(ctx, ns).
		Return([]*entity.Todo{{Title: "Book venue"}}, nil)
	m.registryRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, nil)
	m.vendorRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, nil)
	m.seatingRepo.EXPECT().FindByNamespace(ctx, ns).
		Return(nil, repository.ErrSeatingNotFound)
	m.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, OnboardingData: map[string]any{"style": "garden"}}, nil)

	snapshot, err := svc.Sync(ctx, scope)
	require.NoError(t, err)
	require.Len(t, snapshot.Guests, 1)
	require.Len(t, snapshot.Budget, 1)
	require.Len(t, snapshot.Todos, 1)
	assert.Nil(t, snapshot.Seating)
	assert.Equal(t, "garden", snapshot.Onboarding["style"])
	assert.Empty(t, snapshot.Partial)
	assert.False(t, snapshot.SyncedAt.IsZero())
}

func TestSyncService_Sync_RepeatLeavesCacheUnchanged(t *testing.T) {
	m := &syncServiceMocks{
		guestRepo:     mockRepo.NewMockGuestRepository(t),
		budgetRepo:    mockRepo.NewMockBudgetRepository(t),
		todoRepo:      mockRepo.NewMockTodoRepository(t),
		registryRepo:  mockRepo.NewMockRegistryRepository(t),
		vendorRepo:    mockRepo.NewMockVendorRepository(t),
		seatingRepo:   mockRepo.NewMockSeatingRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		workspaceRepo: mockRepo.NewMockWorkspaceRepository(t),
	}
	store := testCache()
	svc := NewSyncService(SyncServiceParams{
		GuestRepo:     m.guestRepo,
		BudgetRepo:    m.budgetRepo,
		TodoRepo:      m.todoRepo,
		RegistryRepo:  m.registryRepo,
		VendorRepo:    m.vendorRepo,
		SeatingRepo:   m.seatingRepo,
		UserRepo:      m.userRepo,
		WorkspaceRepo: m.workspaceRepo,
		Cache:         store,
		Logger:        testLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	scope := entity.PersonalScope(userID)
	ns := scope.Namespace()

	guests := []*entity.Guest{{ID: uuid.New(), Name: "Priya", Namespace: ns}}
	budget := []*entity.BudgetCategory{{ID: uuid.New(), Name: "Venue", Allocated: 9000, Namespace: ns}}

	m.guestRepo.EXPECT().ListByNamespace(ctx, ns).Return(guests, nil).Times(2)
	m.budgetRepo.EXPECT().ListByNamespace(ctx, ns).Return(budget, nil).Times(2)
	m.todoRepo.EXPECT().ListByNamespace(ctx, ns).Return(nil, nil).Times(2)
	m.registryRepo.EXPECT().ListByNamespace(ctx, ns).Return(nil, nil).Times(2)
	m.vendorRepo.EXPECT().ListByNamespace(ctx, ns).Return(nil, nil).Times(2)
	m.seatingRepo.EXPECT().FindByNamespace(ctx, ns).Return(nil, repository.ErrSeatingNotFound).Times(2)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil).Times(2)

	first, err := svc.Sync(ctx, scope)
	require.NoError(t, err)

	var guestsAfterFirst []*entity.Guest
	var budgetAfterFirst []*entity.BudgetCategory
	found, err := store.Get(ctx, ns, entity.DataGuests.String(), &guestsAfterFirst)
	require.NoError(t, err)
	require.True(t, found)
	found, err = store.Get(ctx, ns, entity.DataBudget.String(), &budgetAfterFirst)
	require.NoError(t, err)
	require.True(t, found)

	second, err := svc.Sync(ctx, scope)
	require.NoError(t, err)

	var guestsAfterSecond []*entity.Guest
	var budgetAfterSecond []*entity.BudgetCategory
	found, err = store.Get(ctx, ns, entity.DataGuests.String(), &guestsAfterSecond)
	require.NoError(t, err)
	require.True(t, found)
	found, err = store.Get(ctx, ns, entity.DataBudget.String(), &budgetAfterSecond)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, guestsAfterFirst, guestsAfterSecond)
	assert.Equal(t, budgetAfterFirst, budgetAfterSecond)
	assert.Equal(t, first.Guests, second.Guests)
	assert.Equal(t, first.Budget, second.Budget)
	assert.Empty(t, second.Partial)
}

func TestSyncService_Sync_PartialWhenOneCollectionFails(t *testing.T) {
	svc, m := newSyncService(t)

	ctx := context.Background()
	scope := entity.WorkspaceScope(uuid.New(), uuid.New())
	ns := scope.Namespace()

	m.guestRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, errors.New("connection reset"))
	m.budgetRepo.EXPECT().ListByNamespace(ctx, ns).
		Return([]*entity.BudgetCategory{{Name: "Venue"}}, nil)
	m.todoRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, nil)
	m.registryRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, nil)
	m.vendorRepo.EXPECT().ListByNamespace(ctx, ns).
		Return(nil, nil)
	m.seatingRepo.EXPECT().FindByNamespace(ctx, ns).
		Return(nil, repository.ErrSeatingNotFound)

	snapshot, err := svc.Sync(ctx, scope)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Guests)
	require.Len(t, snapshot.Budget, 1)
	assert.Contains(t, snapshot.Partial, "guests")
}

func TestSyncService_Push_AssignsServerIDsToLocalRecords(t *testing.T) {
	svc, m := newSyncService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	ns := scope.Namespace()

	var created *entity.Guest
	m.guestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Guest")).
		Run(func(_ context.Context, guest *entity.Guest) {
			guest.ID = uuid.New()
			created = guest
		}).
		Return(nil)

	result, err := svc.Push(ctx, scope, usecase.PushInput{
		DataType: entity.DataGuests,
		Records: []usecase.PushRecord{
			{ID: "local-abc123", Data: map[string]any{"name": "Offline Guest", "rsvp": "pending"}},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Offline Guest", created.Name)
	assert.Equal(t, ns, created.Namespace)
	assert.Equal(t, created.ID.String(), result.CreatedIDs["local-abc123"])
	assert.Zero(t, result.Updated)
	assert.Empty(t, result.Failed)
}

func TestSyncService_Push_UpdatesExistingRecords(t *testing.T) {
	svc, m := newSyncService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	ns := scope.Namespace()
	todoID := uuid.New()

	existing := &entity.Todo{ID: todoID, Namespace: ns, Title: "Old title"}

	m.todoRepo.EXPECT().
		FindByID(ctx, ns, todoID).
		Return(existing, nil)
	m.todoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Todo")).
		Return(nil)

	result, err := svc.Push(ctx, scope, usecase.PushInput{
		DataType: entity.DataTodos,
		Records: []usecase.PushRecord{
			{ID: todoID.String(), Data: map[string]any{"title": "New title", "completed": true}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, "New title", existing.Title)
	assert.True(t, existing.Completed)
}

func TestSyncService_Push_UnknownServerIDFails(t *testing.T) {
	svc, m := newSyncService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())
	ns := scope.Namespace()
	missingID := uuid.New()

	m.guestRepo.EXPECT().
		FindByID(ctx, ns, missingID).
		Return(nil, repository.ErrGuestNotFound)

	result, err := svc.Push(ctx, scope, usecase.PushInput{
		DataType: entity.DataGuests,
		Records: []usecase.PushRecord{
			{ID: missingID.String(), Data: map[string]any{"name": "Ghost"}},
		},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Updated)
	assert.Equal(t, []string{missingID.String()}, result.Failed)
}

func TestSyncService_Push_RejectsUnknownDataType(t *testing.T) {
	svc, _ := newSyncService(t)

	_, err := svc.Push(context.Background(), entity.PersonalScope(uuid.New()), usecase.PushInput{
		DataType: entity.DataType("seating"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDataType)
}
