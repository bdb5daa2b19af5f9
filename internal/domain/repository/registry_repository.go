package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrRegistryNotFound is returned when a registry link does not exist in the namespace.
var ErrRegistryNotFound = errors.New("registry not found")

// RegistryRepository defines the interface for gift registry persistence.
type RegistryRepository interface {
	// ListByNamespace retrieves all registry links in a namespace.
	ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Registry, error)

	// Create persists a new registry link.
	Create(ctx context.Context, registry *entity.Registry) error

	// Delete removes a registry link by ID within a namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every registry link in a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
