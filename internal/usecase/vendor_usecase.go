package usecase

import (
	"context"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/service"

	"github.com/google/uuid"
)

// CreateVendorInput defines the data required to track a vendor.
type CreateVendorInput struct {
	Name     string
	Category string
	Status   entity.VendorStatus
	Price    float64
	Location string
	Notes    string
}

// UpdateVendorInput carries a partial vendor update. Nil fields are left unchanged.
type UpdateVendorInput struct {
	Name     *string
	Category *string
	Status   *entity.VendorStatus
	Price    *float64
	Location *string
	Notes    *string
}

// VendorUsecase defines the business operations on tracked vendors.
type VendorUsecase interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.Vendor, error)
	Create(ctx context.Context, scope entity.Scope, input CreateVendorInput) (*entity.Vendor, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input UpdateVendorInput) (*entity.Vendor, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error

	// Locate resolves the vendor's free-form location to map coordinates.
	Locate(ctx context.Context, scope entity.Scope, id uuid.UUID) (*service.GeoPoint, error)
}
