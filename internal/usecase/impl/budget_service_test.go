package impl

import (
	"context"
	"testing"

	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	mockRepo "vivaha/internal/mocks/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBudgetService(t *testing.T) (usecase.BudgetUsecase, *mockRepo.MockBudgetRepository, *mockRepo.MockWorkspaceRepository) {
	budgetRepo := mockRepo.NewMockBudgetRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	service := NewBudgetService(BudgetServiceParams{
		BudgetRepo:    budgetRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return service, budgetRepo, workspaceRepo
}

func TestBudgetService_Create_RejectsNegativeAmounts(t *testing.T) {
	service, _, _ := newBudgetService(t)

	_, err := service.Create(context.Background(), entity.PersonalScope(uuid.New()), usecase.CreateBudgetCategoryInput{
		Name:      "Venue",
		Allocated: -100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBudgetService_Summary(t *testing.T) {
	service, budgetRepo, _ := newBudgetService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	budgetRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return([]*entity.BudgetCategory{
			{Name: "Venue", Allocated: 10000, Spent: 4000},
			{Name: "Catering", Allocated: 6000, Spent: 1500},
		}, nil)

	summary, err := service.Summary(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, float64(16000), summary.TotalAllocated)
	assert.Equal(t, float64(5500), summary.TotalSpent)
	assert.Equal(t, float64(10500), summary.Remaining)
	assert.Equal(t, 2, summary.Categories)
}

func TestBudgetService_SetAllocation_UpdatesExistingCaseInsensitive(t *testing.T) {
	service, budgetRepo, _ := newBudgetService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	existing := &entity.BudgetCategory{
		ID:        uuid.New(),
		Namespace: scope.Namespace(),
		Name:      "Venue",
		Allocated: 2000,
	}

	budgetRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return([]*entity.BudgetCategory{existing}, nil)
	budgetRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.BudgetCategory")).
		Return(nil)

	category, err := service.SetAllocation(ctx, scope, "venue", 5000)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, category.ID)
	assert.Equal(t, float64(5000), category.Allocated)
	assert.Equal(t, "Venue", category.Name)
}

func TestBudgetService_SetAllocation_CreatesWhenMissing(t *testing.T) {
	service, budgetRepo, _ := newBudgetService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	budgetRepo.EXPECT().
		ListByNamespace(ctx, scope.Namespace()).
		Return(nil, nil)
	budgetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BudgetCategory")).
		Return(nil)

	category, err := service.SetAllocation(ctx, scope, "Flowers", 1200)
	require.NoError(t, err)
	assert.Equal(t, "Flowers", category.Name)
	assert.Equal(t, float64(1200), category.Allocated)
	assert.Equal(t, scope.Namespace(), category.Namespace)
}
