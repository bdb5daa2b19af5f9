package model

import (
	"time"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// TeamMemberDocument is one collaborator entry embedded in a workspace.
type TeamMemberDocument struct {
	UserID  string    `json:"user_id"`
	Role    string    `json:"role"`
	Email   string    `json:"email"`
	AddedAt time.Time `json:"added_at"`
}

// ProgressDocument mirrors the cached progress counters.
type ProgressDocument struct {
	TasksCompleted  int     `json:"tasks_completed"`
	TasksTotal      int     `json:"tasks_total"`
	VendorsBooked   int     `json:"vendors_booked"`
	BudgetAllocated float64 `json:"budget_allocated"`
}

// WorkspaceDocument is the stored form of a wedding workspace.
type WorkspaceDocument struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	OwnerID      string                  `json:"owner_id"`
	Name         string                  `json:"name"`
	WeddingDate  time.Time               `json:"wedding_date"`
	WeddingType  string                  `json:"wedding_type"`
	Notes        string                  `json:"notes,omitempty"`
	Status       string                  `json:"status"`
	LastActivity time.Time               `json:"last_activity"`
	TeamMembers  []TeamMemberDocument    `json:"team_members,omitempty"`
	Progress     ProgressDocument        `json:"progress"`
	ArchivedAt   *time.Time              `json:"archived_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// WorkspaceFromEntity converts a domain workspace to its stored form.
func WorkspaceFromEntity(w *entity.Workspace) *WorkspaceDocument {
	members := make([]TeamMemberDocument, 0, len(w.TeamMembers))
	for _, m := range w.TeamMembers {
		members = append(members, TeamMemberDocument{
			UserID:  m.UserID.String(),
			Role:    string(m.Role),
			Email:   m.Email,
			AddedAt: m.AddedAt,
		})
	}

	return &WorkspaceDocument{
		ID:           NewRecordID(TableWorkspaces, w.ID),
		OwnerID:      w.OwnerID.String(),
		Name:         w.Name,
		WeddingDate:  w.WeddingDate,
		WeddingType:  string(w.WeddingType),
		Notes:        w.Notes,
		Status:       string(w.Status),
		LastActivity: w.LastActivity,
		TeamMembers:  members,
		Progress: ProgressDocument{
			TasksCompleted:  w.Progress.TasksCompleted,
			TasksTotal:      w.Progress.TasksTotal,
			VendorsBooked:   w.Progress.VendorsBooked,
			BudgetAllocated: w.Progress.BudgetAllocated,
		},
		ArchivedAt: w.ArchivedAt,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain workspace.
func (d *WorkspaceDocument) ToEntity() *entity.Workspace {
	members := make([]entity.TeamMember, 0, len(d.TeamMembers))
	for _, m := range d.TeamMembers {
		userID, _ := uuid.Parse(m.UserID)
		members = append(members, entity.TeamMember{
			UserID:  userID,
			Role:    entity.TeamRole(m.Role),
			Email:   m.Email,
			AddedAt: m.AddedAt,
		})
	}

	ownerID, _ := uuid.Parse(d.OwnerID)

	return &entity.Workspace{
		ID:           UUIDFromRecordID(d.ID),
		OwnerID:      ownerID,
		Name:         d.Name,
		WeddingDate:  d.WeddingDate,
		WeddingType:  entity.WeddingType(d.WeddingType),
		Notes:        d.Notes,
		Status:       entity.WorkspaceStatus(d.Status),
		LastActivity: d.LastActivity,
		TeamMembers:  members,
		Progress: entity.ProgressMetrics{
			TasksCompleted:  d.Progress.TasksCompleted,
			TasksTotal:      d.Progress.TasksTotal,
			VendorsBooked:   d.Progress.VendorsBooked,
			BudgetAllocated: d.Progress.BudgetAllocated,
		},
		ArchivedAt: d.ArchivedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
