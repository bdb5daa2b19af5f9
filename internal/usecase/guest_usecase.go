package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGuestInput defines the data required to add a guest.
type CreateGuestInput struct {
	Name         string
	Email        string
	Phone        string
	Side         string
	RSVP         entity.RSVPStatus
	PlusOnes     int
	DietaryNotes string
}

// UpdateGuestInput carries a partial guest update. Nil fields are left unchanged.
type UpdateGuestInput struct {
	Name         *string
	Email        *string
	Phone        *string
	Side         *string
	RSVP         *entity.RSVPStatus
	PlusOnes     *int
	DietaryNotes *string
}

// GuestUsecase defines the business operations on the guest list. Every
// operation runs inside the scope's namespace.
type GuestUsecase interface {
	List(ctx context.Context, scope entity.Scope) ([]*entity.Guest, error)
	Create(ctx context.Context, scope entity.Scope, input CreateGuestInput) (*entity.Guest, error)
	Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input UpdateGuestInput) (*entity.Guest, error)
	Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error
	Stats(ctx context.Context, scope entity.Scope) (*entity.GuestStats, error)
}
