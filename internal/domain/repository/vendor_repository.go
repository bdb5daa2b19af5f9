package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor does not exist in the namespace.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the interface for tracked vendor persistence.
type VendorRepository interface {
	// ListByNamespace retrieves all tracked vendors in a namespace.
	ListByNamespace(ctx context.Context, ns entity.NamespaceKey) ([]*entity.Vendor, error)

	// FindByID retrieves a vendor by ID within a namespace.
	FindByID(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) (*entity.Vendor, error)

	// Create persists a new tracked vendor.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// Update modifies an existing vendor within its namespace.
	Update(ctx context.Context, vendor *entity.Vendor) error

	// Delete removes a vendor by ID within a namespace.
	Delete(ctx context.Context, ns entity.NamespaceKey, id uuid.UUID) error

	// PurgeNamespace removes every tracked vendor in a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
