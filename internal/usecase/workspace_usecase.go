package usecase

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkspaceInput defines the data required to open a new wedding
// workspace. Name and wedding date are mandatory.
type CreateWorkspaceInput struct {
	OwnerID     uuid.UUID
	Name        string
	WeddingDate time.Time
	WeddingType entity.WeddingType
	Notes       string
}

// UpdateWorkspaceInput carries a partial workspace update. Nil fields are
// left unchanged.
type UpdateWorkspaceInput struct {
	Name        *string
	WeddingDate *time.Time
	WeddingType *entity.WeddingType
	Notes       *string
	Status      *entity.WorkspaceStatus
}

// ListWorkspacesInput filters a workspace listing.
type ListWorkspacesInput struct {
	UserID          uuid.UUID
	Statuses        []entity.WorkspaceStatus
	IncludeArchived bool
}

// AddTeamMemberInput grants a collaborator access to a workspace.
type AddTeamMemberInput struct {
	Email string
	Role  entity.TeamRole
}

// WorkspaceUsecase defines the business operations on wedding workspaces.
// All operations verify the acting user's access before touching data.
type WorkspaceUsecase interface {
	Create(ctx context.Context, input CreateWorkspaceInput) (*entity.Workspace, error)
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error)
	List(ctx context.Context, input ListWorkspacesInput) ([]*entity.Workspace, error)
	Update(ctx context.Context, userID, workspaceID uuid.UUID, input UpdateWorkspaceInput) (*entity.Workspace, error)
	Rename(ctx context.Context, userID, workspaceID uuid.UUID, name string) (*entity.Workspace, error)

	// Archive hides a workspace from default listings without deleting
	// any of its data.
	Archive(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error)

	// Unarchive restores an archived workspace to planning status.
	Unarchive(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error)

	// Duplicate creates a new workspace shell copying the settings of an
	// existing one. Planning data is not copied; the new workspace starts
	// with an empty namespace.
	Duplicate(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error)

	// Delete permanently removes a workspace and purges every record and
	// cache entry in its namespace.
	Delete(ctx context.Context, userID, workspaceID uuid.UUID) error

	// AddTeamMember adds a collaborator to the workspace roster.
	AddTeamMember(ctx context.Context, userID, workspaceID uuid.UUID, input AddTeamMemberInput) (*entity.Workspace, error)

	// RecomputeMetrics refreshes the cached progress counters from the
	// owning collections.
	RecomputeMetrics(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error)

	// InviteQR renders a QR code encoding an invitation to the workspace.
	InviteQR(ctx context.Context, userID, workspaceID uuid.UUID) ([]byte, error)
}
