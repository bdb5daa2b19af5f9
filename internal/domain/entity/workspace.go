package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeddingType classifies the kind of wedding a workspace plans for.
type WeddingType string

const (
	WeddingInterfaith  WeddingType = "interfaith"
	WeddingReligious   WeddingType = "religious"
	WeddingSecular     WeddingType = "secular"
	WeddingDestination WeddingType = "destination"
	WeddingOther       WeddingType = "other"
)

// IsValid checks if the WeddingType is a valid value.
func (t WeddingType) IsValid() bool {
	switch t {
	case WeddingInterfaith, WeddingReligious, WeddingSecular, WeddingDestination, WeddingOther:
		return true
	default:
		return false
	}
}

// WorkspaceStatus represents the lifecycle state of a workspace.
type WorkspaceStatus string

const (
	StatusPlanning  WorkspaceStatus = "planning"
	StatusActive    WorkspaceStatus = "active"
	StatusCompleted WorkspaceStatus = "completed"
	StatusArchived  WorkspaceStatus = "archived"
)

// IsValid checks if the WorkspaceStatus is a valid value.
func (s WorkspaceStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

// TeamRole represents a team member's role inside one workspace.
type TeamRole string

const (
	TeamPlanner   TeamRole = "planner"
	TeamAssistant TeamRole = "assistant"
	TeamCouple    TeamRole = "couple"
	TeamViewer    TeamRole = "viewer"
)

// TeamMember is a collaborator granted access to a workspace.
type TeamMember struct {
	UserID  uuid.UUID `json:"user_id"`
	Role    TeamRole  `json:"role"`
	Email   string    `json:"email"`
	AddedAt time.Time `json:"added_at"`
}

// ProgressMetrics are derived counters cached on the workspace for dashboard
// display. The owning collections are the source of truth; these values are
// recomputed from them and may lag by at most one refresh cycle.
type ProgressMetrics struct {
	TasksCompleted  int     `json:"tasks_completed"`
	TasksTotal      int     `json:"tasks_total"`
	VendorsBooked   int     `json:"vendors_booked"`
	BudgetAllocated float64 `json:"budget_allocated"`
}

// Workspace represents one independently managed wedding-planning project.
// Its id doubles as the namespace key for every domain record it owns.
type Workspace struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Name         string          `json:"name"`
	WeddingDate  time.Time       `json:"wedding_date"`
	WeddingType  WeddingType     `json:"wedding_type"`
	Notes        string          `json:"notes,omitempty"`
	Status       WorkspaceStatus `json:"status"`
	LastActivity time.Time       `json:"last_activity"`
	TeamMembers  []TeamMember    `json:"team_members"`
	Progress     ProgressMetrics `json:"progress_metrics"`
	ArchivedAt   *time.Time      `json:"archived_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Namespace returns the workspace's data partition key.
func (w *Workspace) Namespace() NamespaceKey {
	return WorkspaceNamespace(w.ID)
}

// IsMember reports whether the given user owns the workspace or appears in its
// team member list.
func (w *Workspace) IsMember(userID uuid.UUID) bool {
	if w.OwnerID == userID {
		return true
	}
	for _, m := range w.TeamMembers {
		if m.UserID == userID {
			return true
		}
	}

	return false
}
