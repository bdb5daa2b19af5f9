package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a community post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the interface for community post persistence.
// Unlike the planning collections, the feed is read globally; only
// mutations are restricted to the author's namespace.
type PostRepository interface {
	// ListFeed retrieves the most recent posts across all namespaces,
	// optionally filtered by category, newest first.
	ListFeed(ctx context.Context, category entity.PostCategory, limit int) ([]*entity.Post, error)

	// FindByID retrieves a post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// Update replaces an existing post. Callers must verify authorship first.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by ID within the author's namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every post authored under a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
