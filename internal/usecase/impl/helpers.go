// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
)

// bumpWorkspaceActivity records a write against a workspace partition so that
// listings ordered by last activity stay fresh. Personal-scope writes carry no
// workspace to bump. Failures are logged and swallowed; activity tracking must
// never fail a user's mutation.
func bumpWorkspaceActivity(ctx context.Context, repo repository.WorkspaceRepository, scope entity.Scope, logger *slog.Logger) {
	if !scope.IsWorkspace() {
		return
	}
	if err := repo.TouchActivity(ctx, scope.WorkspaceID, time.Now()); err != nil {
		logger.WarnContext(ctx, "failed to bump workspace activity",
			slog.String("workspaceID", scope.WorkspaceID.String()),
			slog.Any("error", err))
	}
}

// refreshCollectionCache replaces the cached copy of one collection. When the
// fresh value cannot be written the stale entry is dropped instead, so readers
// fall through to the repository rather than serve outdated data.
func refreshCollectionCache(ctx context.Context, cache service.CacheStore, ns entity.NamespaceKey, dataType entity.DataType, value any, logger *slog.Logger) {
	if err := cache.Set(ctx, ns, dataType.String(), value); err != nil {
		logger.WarnContext(ctx, "failed to refresh collection cache",
			slog.String("namespace", ns.String()),
			slog.String("dataType", dataType.String()),
			slog.Any("error", err))

		if err := cache.Remove(ctx, ns, dataType.String()); err != nil {
			logger.WarnContext(ctx, "failed to drop stale cache entry",
				slog.String("namespace", ns.String()),
				slog.String("dataType", dataType.String()),
				slog.Any("error", err))
		}
	}
}

// invalidateCollectionCache drops the cached copy of one collection after a
// mutation. The next read repopulates it from the repository.
func invalidateCollectionCache(ctx context.Context, cache service.CacheStore, ns entity.NamespaceKey, dataType entity.DataType, logger *slog.Logger) {
	if err := cache.Remove(ctx, ns, dataType.String()); err != nil {
		logger.WarnContext(ctx, "failed to invalidate collection cache",
			slog.String("namespace", ns.String()),
			slog.String("dataType", dataType.String()),
			slog.Any("error", err))
	}
}
