package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistryType identifies the storefront a registry link points at.
type RegistryType string

const (
	RegistryZola         RegistryType = "zola"
	RegistryAmazon       RegistryType = "amazon"
	RegistryTarget       RegistryType = "target"
	RegistryBedBath      RegistryType = "bed-bath-beyond"
	RegistryOther        RegistryType = "other"
)

// IsValid checks if the RegistryType is a valid value.
func (t RegistryType) IsValid() bool {
	switch t {
	case RegistryZola, RegistryAmazon, RegistryTarget, RegistryBedBath, RegistryOther:
		return true
	default:
		return false
	}
}

// Registry is one external gift registry linked by the couple.
type Registry struct {
	ID        uuid.UUID    `json:"id"`
	Namespace NamespaceKey `json:"namespace"`
	Name      string       `json:"name"`
	Type      RegistryType `json:"type"`
	URL       string       `json:"url"`
	Notes     string       `json:"notes,omitempty"`
	AddedAt   time.Time    `json:"added_at"`
}
