package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrGuestNotFound is returned when a guest does not exist in the namespace.
var ErrGuestNotFound = errors.New("guest not found")

// GuestRepository defines the interface for guest list persistence.
// Every operation is scoped to a namespace; a guest belonging to another
// namespace is indistinguishable from one that does not exist.
type GuestRepository interface {
	// ListByNamespace retrieves all guests in a namespace.
	ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Guest, error)

	// FindByID retrieves a guest by ID within a namespace.
	FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Guest, error)

	// Create persists a new guest.
	Create(ctx context.Context, guest *entity.Guest) error

	// Update modifies an existing guest within its namespace.
	Update(ctx context.Context, guest *entity.Guest) error

	// Delete removes a guest by ID within a namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every guest in a namespace. Used when a
	// workspace is deleted.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
