package usecase

import (
	"context"

	"vivaha/internal/domain/entity"
)

// SeatingUsecase defines the business operations on the seating chart.
// A namespace holds one chart; saves replace the table layout wholesale.
type SeatingUsecase interface {
	// Get returns the namespace's chart, or an empty chart if none has
	// been saved yet.
	Get(ctx context.Context, scope entity.Scope) (*entity.SeatingChart, error)

	// Save replaces the chart's table layout.
	Save(ctx context.Context, scope entity.Scope, tables []entity.SeatingTable) (*entity.SeatingChart, error)
}
