package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus tracks where a vendor sits in the booking funnel. Booked
// vendors count toward the workspace's vendorsBooked progress metric.
type VendorStatus string

const (
	VendorFavorite  VendorStatus = "favorite"
	VendorContacted VendorStatus = "contacted"
	VendorBooked    VendorStatus = "booked"
)

// IsValid checks if the VendorStatus is a valid value.
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorFavorite, VendorContacted, VendorBooked:
		return true
	default:
		return false
	}
}

// Vendor is one wedding vendor the couple is tracking or has booked.
type Vendor struct {
	ID        uuid.UUID    `json:"id"`
	Namespace NamespaceKey `json:"namespace"`
	Name      string       `json:"name"`
	Category  string       `json:"category,omitempty"`
	Status    VendorStatus `json:"status"`
	Price     float64      `json:"price,omitempty"`
	Location  string       `json:"location,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
