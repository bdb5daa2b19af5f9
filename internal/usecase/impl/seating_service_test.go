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

func newSeatingService(t *testing.T) (usecase.SeatingUsecase, *mockRepo.MockSeatingRepository, *mockRepo.MockWorkspaceRepository) {
	seatingRepo := mockRepo.NewMockSeatingRepository(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	svc := NewSeatingService(SeatingServiceParams{
		SeatingRepo:   seatingRepo,
		WorkspaceRepo: workspaceRepo,
		Cache:         testCache(),
		Logger:        testLogger(),
	})

	return svc, seatingRepo, workspaceRepo
}

func TestSeatingService_Get_EmptyChartWhenNoneSaved(t *testing.T) {
	svc, seatingRepo, _ := newSeatingService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	seatingRepo.EXPECT().
		FindByNamespace(ctx, scope.Namespace()).
		Return(nil, repository.ErrSeatingNotFound)

	chart, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, scope.Namespace(), chart.Namespace)
	assert.Empty(t, chart.Tables)
}

func TestSeatingService_Save_FillsTableDefaults(t *testing.T) {
	svc, seatingRepo, _ := newSeatingService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	seatingRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.SeatingChart")).
		Return(nil)

	chart, err := svc.Save(ctx, scope, []entity.SeatingTable{
		{Name: "Family", Capacity: 8, Guests: []entity.SeatedGuest{{Name: "Priya"}, {Name: "Ravi"}}},
	})
	require.NoError(t, err)
	require.Len(t, chart.Tables, 1)
	assert.Equal(t, entity.ShapeRound, chart.Tables[0].Shape)
	assert.NotEmpty(t, chart.Tables[0].ID)
}

func TestSeatingService_Save_RejectsOverbookedTable(t *testing.T) {
	svc, _, _ := newSeatingService(t)

	_, err := svc.Save(context.Background(), entity.PersonalScope(uuid.New()), []entity.SeatingTable{
		{Name: "Tiny", Capacity: 1, Guests: []entity.SeatedGuest{{Name: "Priya"}, {Name: "Ravi"}}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSeatingService_Save_SecondGetServedFromCache(t *testing.T) {
	svc, seatingRepo, _ := newSeatingService(t)

	ctx := context.Background()
	scope := entity.PersonalScope(uuid.New())

	seatingRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.SeatingChart")).
		Return(nil)

	_, err := svc.Save(ctx, scope, []entity.SeatingTable{{Name: "Family", Capacity: 8}})
	require.NoError(t, err)

	// The save refreshed the cache, so the read never hits the repository.
	chart, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	require.Len(t, chart.Tables, 1)
	assert.Equal(t, "Family", chart.Tables[0].Name)
}
