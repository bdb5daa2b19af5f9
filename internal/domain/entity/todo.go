package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is one planning task. Tasks feed the workspace progress metrics.
type Todo struct {
	ID        uuid.UUID    `json:"id"`
	LocalID   string       `json:"local_id,omitempty"`
	Namespace NamespaceKey `json:"namespace"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	Category  string       `json:"category,omitempty"`
	DueDate   *time.Time   `json:"due_date,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
