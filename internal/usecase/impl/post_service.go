package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultFeedLimit bounds unpaginated feed reads.
const defaultFeedLimit = 50

// postService implements the PostUsecase interface. Posts live under the
// author's personal namespace regardless of any selected workspace, so
// switching workspaces never changes who may edit a post.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Feed returns the most recent community posts, newest first.
func (srv *postService) Feed(ctx context.Context, category entity.PostCategory, limit int) ([]*entity.Post, error) {
	switch category {
	case "", entity.CategoryWeddingRave, entity.CategoryAppFeedback:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown post category")
	}

	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}

	posts, err := srv.postRepo.ListFeed(ctx, category, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load post feed")
	}

	return posts, nil
}

// Create publishes a post authored by the scope's user.
func (srv *postService) Create(ctx context.Context, scope entity.Scope, authorName string, input usecase.CreatePostInput) (*entity.Post, error) {
	if input.Content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("post content is required")
	}

	postType := input.Type
	if postType == "" {
		postType = entity.PostBlog
	}
	switch postType {
	case entity.PostPhoto, entity.PostBlog:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown post type")
	}
	if postType == entity.PostPhoto && input.PhotoURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo posts need a photo url")
	}

	category := input.Category
	if category == "" {
		category = entity.CategoryWeddingRave
	}
	switch category {
	case entity.CategoryWeddingRave, entity.CategoryAppFeedback:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown post category")
	}
	if input.AppRating != 0 && (input.AppRating < 1 || input.AppRating > 5) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("app rating must be between 1 and 5")
	}

	post := &entity.Post{
		Namespace:  entity.UserNamespace(scope.UserID),
		AuthorID:   scope.UserID,
		AuthorName: authorName,
		Type:       postType,
		Category:   category,
		Content:    input.Content,
		PhotoURL:   input.PhotoURL,
		Location:   input.Location,
		Tags:       input.Tags,
		AppRating:  input.AppRating,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	return post, nil
}

// Update edits a post. Only the author may edit.
func (srv *postService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.findOwned(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		if *input.Content == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("post content cannot be empty")
		}
		post.Content = *input.Content
	}
	if input.PhotoURL != nil {
		post.PhotoURL = *input.PhotoURL
	}
	if input.Location != nil {
		post.Location = *input.Location
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	post.UpdatedAt = time.Now()

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// Delete removes a post. Only the author may delete.
func (srv *postService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, scope, id); err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, entity.UserNamespace(scope.UserID), id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}

// ToggleLike adds the user's like, or removes it if already present.
func (srv *postService) ToggleLike(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	uid := userID.String()
	if idx := slices.Index(post.LikedBy, uid); idx >= 0 {
		post.LikedBy = slices.Delete(post.LikedBy, idx, idx+1)
	} else {
		post.LikedBy = append(post.LikedBy, uid)
	}
	post.Likes = len(post.LikedBy)
	post.UpdatedAt = time.Now()

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to toggle like")
	}

	return post, nil
}

// AddComment appends a comment to a post. Anyone may comment.
func (srv *postService) AddComment(ctx context.Context, userID uuid.UUID, userName string, id uuid.UUID, content string) (*entity.Post, error) {
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment content is required")
	}

	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	post.Comments = append(post.Comments, entity.PostComment{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  userName,
		Content:   content,
		CreatedAt: time.Now(),
	})
	post.UpdatedAt = time.Now()

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}

	return post, nil
}

// findOwned loads a post and verifies the scope's user authored it.
func (srv *postService) findOwned(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	if post.AuthorID != scope.UserID {
		return nil, domainerrors.ErrPostOwnershipViolation
	}

	return post, nil
}
