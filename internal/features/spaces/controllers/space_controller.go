package spaces_controllers

import (
	"net/http"

	audit_logs "spacehub-backend/internal/features/audit_logs"
	spaces_dto "spacehub-backend/internal/features/spaces/dto"
	spaces_services "spacehub-backend/internal/features/spaces/services"
	users_middleware "spacehub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceController struct {
	spaceService *spaces_services.SpaceService
}

func (c *SpaceController) RegisterRoutes(router *gin.RouterGroup) {
	spaceRoutes := router.Group("/spaces")

	spaceRoutes.POST("", c.CreateSpace)
	spaceRoutes.GET("", c.GetSpaces)
	spaceRoutes.GET("/:id", c.GetSpace)
	spaceRoutes.PUT("/:id/settings", c.UpdateSpaceSettings)
	spaceRoutes.DELETE("/:id", c.DeleteSpace)
	spaceRoutes.GET("/:id/members", c.GetSpaceMembers)
	spaceRoutes.GET("/:id/audit-logs", c.GetSpaceAuditLogs)
}

// CreateSpace
// @Summary Create a new space
// @Description Create a space owned by the current user; clears the onboarding flag
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body spaces_dto.CreateSpaceRequestDTO true "Space creation data"
// @Success 200 {object} spaces_dto.CreateSpaceResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /spaces [post]
func (c *SpaceController) CreateSpace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request spaces_dto.CreateSpaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "space name is required"})
		return
	}

	response, err := c.spaceService.CreateSpace(&request, user)
	if err != nil {
		if err.Error() == "space name is required" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create space"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSpaces
// @Summary List the user's spaces
// @Description Get the spaces owned by the current user
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} spaces_dto.ListSpacesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /spaces [get]
func (c *SpaceController) GetSpaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.spaceService.GetUserSpaces(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve spaces"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSpace
// @Summary Get space details
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} spaces_models.Space
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [get]
func (c *SpaceController) GetSpace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	space, err := c.spaceService.GetSpace(spaceID, user)
	if err != nil {
		switch err.Error() {
		case "space not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to view space":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve space"})
		}
		return
	}

	ctx.JSON(http.StatusOK, space)
}

// UpdateSpaceSettings
// @Summary Update space settings
// @Description Update the space settings bag (default view, notifications, accent color)
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body spaces_dto.UpdateSpaceSettingsRequestDTO true "Settings"
// @Success 200 {object} spaces_models.Space
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id}/settings [put]
func (c *SpaceController) UpdateSpaceSettings(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	var request spaces_dto.UpdateSpaceSettingsRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	space, err := c.spaceService.UpdateSpaceSettings(spaceID, &request, user)
	if err != nil {
		switch err.Error() {
		case "space not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "only space owner can update space settings":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update space settings"})
		}
		return
	}

	ctx.JSON(http.StatusOK, space)
}

// DeleteSpace
// @Summary Delete a space
// @Description Delete a space (owner only); its memberships are removed with it
// @Tags spaces
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [delete]
func (c *SpaceController) DeleteSpace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	if err := c.spaceService.DeleteSpace(spaceID, user); err != nil {
		switch err.Error() {
		case "space not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "only space owner can delete space":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete space"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Space deleted successfully"})
}

// GetSpaceMembers
// @Summary List space members
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} spaces_dto.GetMembersResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/members [get]
func (c *SpaceController) GetSpaceMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	response, err := c.spaceService.GetSpaceMembers(spaceID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view space members" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve space members"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSpaceAuditLogs
// @Summary Get space audit logs
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} audit_logs.GetAuditLogsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/audit-logs [get]
func (c *SpaceController) GetSpaceAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	request := &audit_logs.GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.spaceService.GetSpaceAuditLogs(spaceID, user, request)
	if err != nil {
		if err.Error() == "insufficient permissions to view space audit logs" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
