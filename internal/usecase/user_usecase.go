// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vivaha/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CompleteOnboardingInput carries the onboarding questionnaire answers.
type CompleteOnboardingInput struct {
	UserID uuid.UUID
	Data   map[string]any
}

// UpdateNavigationInput carries the user's dashboard navigation customization.
type UpdateNavigationInput struct {
	UserID uuid.UUID
	Order  []string
	Hidden []string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a fresh token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	CompleteOnboarding(ctx context.Context, input CompleteOnboardingInput) (*entity.User, error)
	UpdateNavigation(ctx context.Context, input UpdateNavigationInput) (*entity.User, error)
}
