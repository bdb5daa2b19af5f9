package impl

import (
	"context"
	"log/slog"

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

// activeWorkspaceKey is the cache key holding a user's selected workspace id.
// It lives under the user's personal namespace and never expires; selection
// only changes through SelectWorkspace and ClearWorkspace.
const activeWorkspaceKey = "activeWorkspace"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SelectWorkspace makes a workspace the user's active data partition.
func (srv *sessionService) SelectWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	workspace, err := srv.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return domainerrors.ErrWorkspaceNotFound
		}

		return errors.Wrap(err, "failed to load workspace")
	}

	if !workspace.IsMember(userID) {
		return domainerrors.ErrWorkspaceAccessDenied
	}
	if workspace.Status == entity.StatusArchived {
		return domainerrors.ErrWorkspaceArchived
	}

	if err := srv.cache.SetWithTTL(ctx, entity.UserNamespace(userID), activeWorkspaceKey, workspaceID.String(), 0); err != nil {
		return errors.Wrap(err, "failed to store workspace selection")
	}

	return nil
}

// ClearWorkspace returns the user to their personal data partition.
func (srv *sessionService) ClearWorkspace(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cache.Remove(ctx, entity.UserNamespace(userID), activeWorkspaceKey); err != nil {
		return errors.Wrap(err, "failed to clear workspace selection")
	}

	return nil
}

// ActiveScope resolves the partition requests should operate on. A selection
// pointing at a workspace the user can no longer reach (deleted, archived, or
// membership revoked) is dropped and the personal scope returned instead.
func (srv *sessionService) ActiveScope(ctx context.Context, userID uuid.UUID) (entity.Scope, error) {
	personal := entity.PersonalScope(userID)

	var selected string
	found, err := srv.cache.Get(ctx, entity.UserNamespace(userID), activeWorkspaceKey, &selected)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "failed to read workspace selection", slog.Any("error", err))

		return personal, nil
	}
	if !found {
		return personal, nil
	}

	workspaceID, err := uuid.Parse(selected)
	if err != nil {
		srv.dropSelection(ctx, userID)

		return personal, nil
	}

	workspace, err := srv.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			srv.dropSelection(ctx, userID)

			return personal, nil
		}

		return entity.Scope{}, errors.Wrap(err, "failed to load selected workspace")
	}

	if !workspace.IsMember(userID) || workspace.Status == entity.StatusArchived {
		srv.dropSelection(ctx, userID)

		return personal, nil
	}

	return entity.WorkspaceScope(userID, workspaceID), nil
}

// EndSession drops the user's session state on logout, including the cached
// planning data for their personal namespace.
func (srv *sessionService) EndSession(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cache.PurgeNamespace(ctx, entity.UserNamespace(userID)); err != nil {
		return errors.Wrap(err, "failed to purge session cache")
	}

	return nil
}

func (srv *sessionService) dropSelection(ctx context.Context, userID uuid.UUID) {
	if err := srv.cache.Remove(ctx, entity.UserNamespace(userID), activeWorkspaceKey); err != nil {
		srv.log(ctx).WarnContext(ctx, "failed to drop stale workspace selection",
			slog.String("userID", userID.String()),
			slog.Any("error", err))
	}
}
