package users_controllers

import (
	"net/http"

	users_dto "spacehub-backend/internal/features/users/dto"
	users_middleware "spacehub-backend/internal/features/users/middleware"
	users_services "spacehub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService *users_services.UserService
	limiter     *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	userRoutes := router.Group("/users")

	userRoutes.POST("/sign-up", c.SignUp)
	userRoutes.POST("/sign-in", c.SignIn)
}

func (c *UserController) RegisterProtectedRoutes(router gin.IRoutes) {
	router.GET("/users/me", c.GetCurrentUser)
	router.GET("/users/me/onboarding", c.GetOnboardingState)
}

// SignUp
// @Summary Register a new user
// @Description Create a user account with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignUpRequestDTO true "Sign up data"
// @Success 200 {object} users_dto.SignInResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /users/sign-up [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	if !c.limiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}

	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.SignUp(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SignIn
// @Summary Sign in
// @Description Authenticate with email and password, returns a session token
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.SignInRequestDTO true "Credentials"
// @Success 200 {object} users_dto.SignInResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /users/sign-in [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	if !c.limiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}

	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.SignIn(&request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, c.userService.GetCurrentUserProfile(user))
}

// GetOnboardingState
// @Summary Get onboarding routing decision
// @Description Decides whether the user must create a first space before the dashboard
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.OnboardingStateResponseDTO
// @Failure 401 {object} map[string]string
// @Router /users/me/onboarding [get]
func (c *UserController) GetOnboardingState(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.userService.GetOnboardingState(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get onboarding state"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
