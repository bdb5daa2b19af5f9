package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// guestService implements the GuestUsecase interface.
type guestService struct {
	guestRepo     repository.GuestRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// GuestServiceParams holds dependencies for guestService, injected by Fx.
type GuestServiceParams struct {
	fx.In

	GuestRepo     repository.GuestRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewGuestService is the constructor for guestService.
func NewGuestService(params GuestServiceParams) usecase.GuestUsecase {
	return &guestService{
		guestRepo:     params.GuestRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every guest in the scope's namespace, preferring the cache.
func (srv *guestService) List(ctx context.Context, scope entity.Scope) ([]*entity.Guest, error) {
	ns := scope.Namespace()

	var cached []*entity.Guest
	found, err := srv.cache.Get(ctx, ns, entity.DataGuests.String(), &cached)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "guest cache read failed", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	guests, err := srv.guestRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	refreshCollectionCache(ctx, srv.cache, ns, entity.DataGuests, guests, srv.log(ctx))

	return guests, nil
}

// Create adds a guest to the scope's namespace.
func (srv *guestService) Create(ctx context.Context, scope entity.Scope, input usecase.CreateGuestInput) (*entity.Guest, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("guest name is required")
	}

	rsvp := input.RSVP
	if rsvp == "" {
		rsvp = entity.RSVPPending
	}
	switch rsvp {
	case entity.RSVPPending, entity.RSVPAttending, entity.RSVPDeclined:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown rsvp status")
	}

	guest := &entity.Guest{
		Namespace:    scope.Namespace(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Side:         input.Side,
		RSVP:         rsvp,
		PlusOnes:     input.PlusOnes,
		DietaryNotes: input.DietaryNotes,
	}

	if err := srv.guestRepo.Create(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to create guest")
	}

	srv.afterWrite(ctx, scope)

	return guest, nil
}

// Update applies a partial update to a guest in the scope's namespace.
func (srv *guestService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, input usecase.UpdateGuestInput) (*entity.Guest, error) {
	ns := scope.Namespace()

	guest, err := srv.guestRepo.FindByID(ctx, ns, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("guest not found")
		}

		return nil, errors.Wrap(err, "failed to load guest")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("guest name cannot be empty")
		}
		guest.Name = *input.Name
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.Side != nil {
		guest.Side = *input.Side
	}
	if input.RSVP != nil {
		switch *input.RSVP {
		case entity.RSVPPending, entity.RSVPAttending, entity.RSVPDeclined:
			guest.RSVP = *input.RSVP
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown rsvp status")
		}
	}
	if input.PlusOnes != nil {
		guest.PlusOnes = *input.PlusOnes
	}
	if input.DietaryNotes != nil {
		guest.DietaryNotes = *input.DietaryNotes
	}
	guest.UpdatedAt = time.Now()

	if err := srv.guestRepo.Update(ctx, guest); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("guest not found")
		}

		return nil, errors.Wrap(err, "failed to update guest")
	}

	srv.afterWrite(ctx, scope)

	return guest, nil
}

// Delete removes a guest from the scope's namespace.
func (srv *guestService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := srv.guestRepo.Delete(ctx, scope.Namespace(), id); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("guest not found")
		}

		return errors.Wrap(err, "failed to delete guest")
	}

	srv.afterWrite(ctx, scope)

	return nil
}

// Stats aggregates RSVP counts over the scope's guest list.
func (srv *guestService) Stats(ctx context.Context, scope entity.Scope) (*entity.GuestStats, error) {
	guests, err := srv.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := &entity.GuestStats{Total: len(guests)}
	for _, g := range guests {
		switch g.RSVP {
		case entity.RSVPAttending:
			stats.Attending++
		case entity.RSVPDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}

	return stats, nil
}

func (srv *guestService) afterWrite(ctx context.Context, scope entity.Scope) {
	invalidateCollectionCache(ctx, srv.cache, scope.Namespace(), entity.DataGuests, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))
}
