package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// AddRegistryInput defines the data required to link a gift registry.
type AddRegistryInput struct {
	Name  string
	Type  entity.RegistryType
	URL   string
	Notes string
}

// RegistryUsecase defines the business operations on gift registry links.
type RegistryUsecase interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.Registry, error)
	Add(ctx context.Context, scope entity.Scope, input AddRegistryInput) (*entity.Registry, error)
	Remove(ctx context.Context, scope entity.Scope, id uuid.UUID) error
}
