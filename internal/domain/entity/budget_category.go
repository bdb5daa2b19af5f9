package entity

import (
	"time"

	"github.com/google/uuid"
)

// BudgetCategory is one spending bucket in the wedding budget.
type BudgetCategory struct {
	ID        uuid.UUID    `json:"id"`
	LocalID   string       `json:"local_id,omitempty"`
	Namespace NamespaceKey `json:"namespace"`
	Name      string       `json:"name"`
	Allocated float64      `json:"allocated"`
	Spent     float64      `json:"spent"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BudgetSummary aggregates allocation and spend across all categories.
type BudgetSummary struct {
	TotalAllocated float64 `json:"total_allocated"`
	TotalSpent     float64 `json:"total_spent"`
	Remaining      float64 `json:"remaining"`
	Categories     int     `json:"categories"`
}
