package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a community post.
type CreatePostInput struct {
	Type      entity.PostType
	Category  entity.PostCategory
	Content   string
	PhotoURL  string
	Location  string
	Tags      []string
	AppRating int
}

// UpdatePostInput carries a partial post update. Nil fields are left unchanged.
type UpdatePostInput struct {
	Content  *string
	PhotoURL *string
	Location *string
	Tags     []string
}

// PostUsecase defines the business operations on the community feed. The
// feed is readable by any authenticated user; editing and deleting are
// restricted to the author.
type PostUsecase interface {
	Feed(ctx context.Context, category entity.PostCategory, limit int) ([]*entity.Post, error)
	Create(ctx context.Context, scope entity.Scope, authorName string, input CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// ToggleLike adds or removes the user's like and returns the post.
	ToggleLike(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Post, error)

	// AddComment appends a comment to the post.
	AddComment(ctx context.Context, userID uuid.UUID, userName string, id uuid.UUID, content string) (*entity.Post, error)
}
