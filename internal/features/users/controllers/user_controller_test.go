package users_controllers

import (
	"fmt"
	"net/http"
	"testing"

	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"
	users_dto "spacehub-backend/internal/features/users/dto"
	users_middleware "spacehub-backend/internal/features/users/middleware"
	users_services "spacehub-backend/internal/features/users/services"
	test_utils "spacehub-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUsersTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	userService := users_services.GetUserService()
	userService.SetSpaceCounter(spaces_repositories.GetSpaceRepository())

	v1 := router.Group("/api/v1")
	GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(userService))
	GetUserController().RegisterProtectedRoutes(protected)
	if routerGroup, ok := protected.(*gin.RouterGroup); ok {
		GetSettingsController().RegisterRoutes(routerGroup)
	}

	return router
}

func signUpTestUser(t *testing.T, router *gin.Engine) (*users_dto.SignInResponseDTO, string) {
	t.Helper()

	password := "integration-pass-1"
	request := users_dto.SignUpRequestDTO{
		Email:     fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8]),
		Password:  password,
		FirstName: "Route",
		LastName:  "Tester",
	}

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/sign-up",
		"",
		request,
		http.StatusOK,
		&response,
	)

	return &response, password
}

func Test_SignUp_WithValidData_ReturnsToken(t *testing.T) {
	router := createUsersTestRouter()

	response, _ := signUpTestUser(t, router)

	assert.NotEqual(t, uuid.Nil, response.UserID)
	assert.NotEmpty(t, response.Token)
}

func Test_SignUp_WithShortPassword_ReturnsBadRequest(t *testing.T) {
	router := createUsersTestRouter()

	request := users_dto.SignUpRequestDTO{
		Email:     fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8]),
		Password:  "short",
		FirstName: "Short",
		LastName:  "Password",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/sign-up",
		"",
		request,
		http.StatusBadRequest,
	)
}

func Test_SignIn_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUsersTestRouter()
	user, password := signUpTestUser(t, router)

	request := users_dto.SignInRequestDTO{
		Email:    user.Email,
		Password: password,
	}

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/sign-in",
		"",
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.UserID)
	assert.NotEmpty(t, response.Token)
}

func Test_SignIn_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUsersTestRouter()
	user, _ := signUpTestUser(t, router)

	request := users_dto.SignInRequestDTO{
		Email:    user.Email,
		Password: "definitely-wrong-1",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/sign-in",
		"",
		request,
		http.StatusUnauthorized,
	)
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUsersTestRouter()
	user, _ := signUpTestUser(t, router)

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.ID)
	assert.Equal(t, user.Email, response.Email)
	assert.Equal(t, "Route Tester", response.Name)
	assert.True(t, response.NeedsOnboarding)
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUsersTestRouter()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/users/me",
		"",
		http.StatusUnauthorized,
	)
}

func Test_GetOnboardingState_NewUser_NeedsOnboarding(t *testing.T) {
	router := createUsersTestRouter()
	user, _ := signUpTestUser(t, router)

	var response users_dto.OnboardingStateResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me/onboarding",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.True(t, response.NeedsOnboarding)
}

func Test_UpdateProfile_WithValidData_ProfileIsUpdated(t *testing.T) {
	router := createUsersTestRouter()
	user, _ := signUpTestUser(t, router)

	request := users_dto.UpdateProfileRequestDTO{
		FirstName: "Updated",
		LastName:  "Name",
	}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/settings/profile",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
	)

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&profile,
	)

	assert.Equal(t, "Updated Name", profile.Name)
}

func Test_ChangePassword_OldTokenRejectedNewPasswordWorks(t *testing.T) {
	router := createUsersTestRouter()
	user, _ := signUpTestUser(t, router)

	request := users_dto.ChangePasswordRequestDTO{
		NewPassword: "brand-new-pass-1",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/settings/change-password",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+user.Token,
		http.StatusUnauthorized,
	)

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/sign-in",
		"",
		users_dto.SignInRequestDTO{Email: user.Email, Password: "brand-new-pass-1"},
		http.StatusOK,
		&response,
	)

	require.NotEmpty(t, response.Token)
}
