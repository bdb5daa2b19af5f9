package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Besides identity it carries the onboarding
// state and view preferences that travel with the user across devices; those
// fields are part of the sync snapshot rather than a separate collection.
type User struct {
	ID                  uuid.UUID      `json:"id"`
	Email               string         `json:"email"`
	Name                string         `json:"name"`
	PasswordHash        string         `json:"-"`
	Role                Role           `json:"role"`
	OnboardingCompleted bool           `json:"onboarding_completed"`
	OnboardingData      map[string]any `json:"onboarding_data,omitempty"`
	NavigationPrefs     NavigationPrefs `json:"navigation_preferences"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// NavigationPrefs captures per-user dashboard navigation customization.
type NavigationPrefs struct {
	Order  []string `json:"order"`
	Hidden []string `json:"hidden"`
}

// Namespace returns the user's personal data partition key.
func (u *User) Namespace() NamespaceKey {
	return UserNamespace(u.ID)
}
