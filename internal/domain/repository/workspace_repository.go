package repository

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/errors"

	"github.com/google/uuid"
)

// ErrWorkspaceNotFound is returned when a workspace is not found.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// WorkspaceRepository defines the interface for wedding workspace persistence.
type WorkspaceRepository interface {
	// Create persists a new workspace.
	Create(ctx context.Context, workspace *entity.Workspace) error

	// FindByID retrieves a workspace by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)

	// ListByOwner retrieves all workspaces owned by a user, optionally
	// filtered to the given statuses. An empty filter returns everything.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, statuses []entity.WorkspaceStatus) ([]*entity.Workspace, error)

	// ListByMember retrieves workspaces where the user appears in the team roster.
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error)

	// Update modifies an existing workspace record.
	Update(ctx context.Context, workspace *entity.Workspace) error

	// Delete removes a workspace by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// TouchActivity bumps the workspace's last activity timestamp.
	TouchActivity(ctx context.Context, id uuid.UUID, at time.Time) error
}
