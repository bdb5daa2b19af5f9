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

func newPostService(t *testing.T) (usecase.PostUsecase, *mockRepo.MockPostRepository) {
	postRepo := mockRepo.NewMockPostRepository(t)
	svc := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		Logger:   testLogger(),
	})

	return svc, postRepo
}

func TestPostService_Feed_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Feed(context.Background(), entity.PostCategory("gossip"), 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_Feed_ClampsLimit(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()

	postRepo.EXPECT().
		ListFeed(ctx, entity.PostCategory(""), 50).
		Return([]*entity.Post{{Content: "hello"}}, nil)

	posts, err := svc.Feed(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostService_Create_PostsLiveInPersonalNamespace(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	// A selected workspace must not leak into post ownership.
	scope := entity.WorkspaceScope(userID, uuid.New())

	postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	post, err := svc.Create(ctx, scope, "Asha", usecase.CreatePostInput{
		Content: "Our garden venue was magical.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserNamespace(userID), post.Namespace)
	assert.Equal(t, userID, post.AuthorID)
	assert.Equal(t, entity.PostBlog, post.Type)
	assert.Equal(t, entity.CategoryWeddingRave, post.Category)
}

func TestPostService_Create_PhotoPostNeedsURL(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.Create(context.Background(), entity.PersonalScope(uuid.New()), "Asha", usecase.CreatePostInput{
		Content: "look at this",
		Type:    entity.PostPhoto,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_Update_OnlyAuthorMayEdit(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, AuthorID: uuid.New(), Content: "original"}, nil)

	content := "hijacked"
	_, err := svc.Update(ctx, entity.PersonalScope(uuid.New()), postID, usecase.UpdatePostInput{Content: &content})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
}

func TestPostService_ToggleLike_AddsThenRemoves(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: uuid.New(), Content: "nice"}

	postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil).Twice()
	postRepo.EXPECT().Update(ctx, post).Return(nil).Twice()

	liked, err := svc.ToggleLike(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)
	assert.Contains(t, liked.LikedBy, userID.String())

	unliked, err := svc.ToggleLike(ctx, userID, post.ID)
	require.NoError(t, err)
	assert.Zero(t, unliked.Likes)
	assert.NotContains(t, unliked.LikedBy, userID.String())
}

func TestPostService_ToggleLike_MissingPost(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	_, err := svc.ToggleLike(ctx, uuid.New(), postID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_AddComment(t *testing.T) {
	svc, postRepo := newPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: uuid.New(), Content: "nice"}

	postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	postRepo.EXPECT().Update(ctx, post).Return(nil)

	updated, err := svc.AddComment(ctx, userID, "Ravi", post.ID, "Congrats!")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "Ravi", updated.Comments[0].UserName)
	assert.Equal(t, "Congrats!", updated.Comments[0].Content)
	assert.NotEqual(t, uuid.Nil, updated.Comments[0].ID)
}
