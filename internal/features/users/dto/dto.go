package users_dto

import (
	"time"

	users_models "spacehub-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Email     string `json:"email"     binding:"required,email"`
	Password  string `json:"password"  binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type ChangePasswordRequestDTO struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type UpdateProfileRequestDTO struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
}

type UpdatePreferencesRequestDTO struct {
	Notifications *bool   `json:"notifications"`
	Language      *string `json:"language"`
	AutoSave      *bool   `json:"autoSave"`
}

type UserProfileResponseDTO struct {
	ID              uuid.UUID                `json:"id"`
	Email           string                   `json:"email"`
	FirstName       string                   `json:"firstName"`
	LastName        string                   `json:"lastName"`
	Name            string                   `json:"name"`
	NeedsOnboarding bool                     `json:"needsOnboarding"`
	Preferences     users_models.Preferences `json:"preferences"`
	CreatedAt       time.Time                `json:"createdAt"`
}

type OnboardingStateResponseDTO struct {
	NeedsOnboarding bool `json:"needsOnboarding"`
}
