package entity

import (
	"time"

	"github.com/google/uuid"
)

// RSVPStatus tracks a guest's reply state.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
)

// Guest is one invitee on the wedding guest list.
//
// LocalID is only ever set on records originated offline by a client: it keeps
// the client-generated "local-" identifier until a push assigns a server id,
// at which point the ID is filled in and LocalID cleared.
type Guest struct {
	ID           uuid.UUID    `json:"id"`
	LocalID      string       `json:"local_id,omitempty"`
	Namespace    NamespaceKey `json:"namespace"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Side         string       `json:"side,omitempty"`
	RSVP         RSVPStatus   `json:"rsvp"`
	PlusOnes     int          `json:"plus_ones"`
	DietaryNotes string       `json:"dietary_notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// GuestStats aggregates RSVP counts for dashboard display.
type GuestStats struct {
	Total     int `json:"total"`
	Attending int `json:"attending"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
}

// LocalIDPrefix marks record identifiers generated client-side before the
// server has assigned a real id.
const LocalIDPrefix = "local-"
