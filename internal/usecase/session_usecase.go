package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase tracks which workspace a user is currently working in and
// cleans session state up on logout. The active workspace selection lives in
// the cache under the user's personal namespace so it follows the user
// across devices without touching the document store.
type SessionUsecase interface {
	// SelectWorkspace makes a workspace the user's active data partition.
	// The user must be the owner or a team member.
	SelectWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error

	// ClearWorkspace returns the user to their personal data partition.
	ClearWorkspace(ctx context.Context, userID uuid.UUID) error

	// ActiveScope resolves the scope requests should operate on: the
	// selected workspace when one is set and still accessible, otherwise
	// the user's personal scope.
	ActiveScope(ctx context.Context, userID uuid.UUID) (entity.Scope, error)

	// EndSession drops the user's session state, including the cached
	// planning data for their personal namespace.
	EndSession(ctx context.Context, userID uuid.UUID) error
}
