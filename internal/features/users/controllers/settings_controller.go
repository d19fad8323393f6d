package users_controllers

import (
	"net/http"

	users_dto "spacehub-backend/internal/features/users/dto"
	users_middleware "spacehub-backend/internal/features/users/middleware"
	users_services "spacehub-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	userService *users_services.UserService
}

func (c *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settingsRoutes := router.Group("/settings")

	settingsRoutes.PUT("/profile", c.UpdateProfile)
	settingsRoutes.PUT("/preferences", c.UpdatePreferences)
	settingsRoutes.POST("/change-password", c.ChangePassword)
}

// UpdateProfile
// @Summary Update profile fields
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdateProfileRequestDTO true "Profile data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /settings/profile [put]
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.userService.UpdateProfile(user, &request); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// UpdatePreferences
// @Summary Update user preferences
// @Description Partial update of the preference bag (notifications, language, autosave)
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdatePreferencesRequestDTO true "Preference changes"
// @Success 200 {object} users_models.Preferences
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /settings/preferences [put]
func (c *SettingsController) UpdatePreferences(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.UpdatePreferencesRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preferences, err := c.userService.UpdatePreferences(user, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	ctx.JSON(http.StatusOK, preferences)
}

// ChangePassword
// @Summary Change the current user's password
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.ChangePasswordRequestDTO true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /settings/change-password [post]
func (c *SettingsController) ChangePassword(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.ChangePasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.userService.ChangeUserPassword(user.ID, request.NewPassword); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
