package entity

import (
	"time"

	"github.com/google/uuid"
)

// TableShape is the rendered shape of a seating table.
type TableShape string

const (
	ShapeRound     TableShape = "round"
	ShapeRectangle TableShape = "rectangle"
)

// SeatedGuest is a guest placed at a table. Only the display fields are
// denormalized here; the guest list remains the source of truth.
type SeatedGuest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SeatingTable is one table on the seating chart canvas.
type SeatingTable struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Capacity int           `json:"capacity"`
	Shape    TableShape    `json:"shape"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Guests   []SeatedGuest `json:"guests"`
}

// SeatingChart is the single seating arrangement document for a namespace.
// Saves replace the whole table layout; there is no per-table merge.
type SeatingChart struct {
	ID        uuid.UUID      `json:"id"`
	Namespace NamespaceKey   `json:"namespace"`
	Tables    []SeatingTable `json:"tables"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
