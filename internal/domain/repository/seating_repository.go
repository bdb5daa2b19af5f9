package repository

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"
)

// ErrSeatingNotFound is returned when a namespace has no seating chart yet.
var ErrSeatingNotFound = errors.New("seating chart not found")

// SeatingRepository defines the interface for seating chart persistence.
// Each namespace holds at most one chart; saves replace the whole document.
type SeatingRepository interface {
	// FindByNamespace retrieves the seating chart for a namespace.
	FindByNamespace(ctx context.Context, ns entity.NamespaceKey) (*entity.SeatingChart, error)

	// Save creates or replaces the seating chart for the chart's namespace.
	Save(ctx context.Context, chart *entity.SeatingChart) error

	// PurgeNamespace removes the seating chart for a namespace.
	PurgeNamespace(ctx context.Context, ns entity.NamespaceKey) error
}
