package model

import (
	"time"

	"vivaha/internal/domain/entity"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// UserDocument is the stored form of an account.
type UserDocument struct {
	ID                  *surrealmodels.RecordID `json:"id,omitempty"`
	Email               string                  `json:"email"`
	Name                string                  `json:"name"`
	PasswordHash        string                  `json:"password_hash"`
	Role                string                  `json:"role"`
	OnboardingCompleted bool                    `json:"onboarding_completed"`
	OnboardingData      map[string]any          `json:"onboarding_data,omitempty"`
	NavOrder            []string                `json:"nav_order,omitempty"`
	NavHidden           []string                `json:"nav_hidden,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// UserFromEntity converts a domain user to its stored form.
func UserFromEntity(u *entity.User) *UserDocument {
	return &UserDocument{
		ID:                  NewRecordID(TableUsers, u.ID),
		Email:               u.Email,
		Name:                u.Name,
		PasswordHash:        u.PasswordHash,
		Role:                string(u.Role),
		OnboardingCompleted: u.OnboardingCompleted,
		OnboardingData:      u.OnboardingData,
		NavOrder:            u.NavigationPrefs.Order,
		NavHidden:           u.NavigationPrefs.Hidden,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

// ToEntity converts the stored form back to the domain user.
func (d *UserDocument) ToEntity() *entity.User {
	return &entity.User{
		ID:                  UUIDFromRecordID(d.ID),
		Email:               d.Email,
		Name:                d.Name,
		PasswordHash:        d.PasswordHash,
		Role:                entity.Role(d.Role),
		OnboardingCompleted: d.OnboardingCompleted,
		OnboardingData:      d.OnboardingData,
		NavigationPrefs: entity.NavigationPrefs{
			Order:  d.NavOrder,
			Hidden: d.NavHidden,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
