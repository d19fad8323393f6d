package users_testing

import (
	"fmt"

	users_dto "spacehub-backend/internal/features/users/dto"
	users_services "spacehub-backend/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser registers a user with a unique email and returns its
// session token. Panics on failure: tests cannot proceed without a user.
func CreateTestUser() *users_dto.SignInResponseDTO {
	uniqueID := uuid.New().String()[:8]

	request := &users_dto.SignUpRequestDTO{
		Email:     fmt.Sprintf("test-%s@example.com", uniqueID),
		Password:  "test-password-123",
		FirstName: "Test",
		LastName:  "User " + uniqueID,
	}

	response, err := users_services.GetUserService().SignUp(request)
	if err != nil {
		panic("Failed to create test user: " + err.Error())
	}

	return response
}
