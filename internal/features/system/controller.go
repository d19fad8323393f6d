package system

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemController struct {
	systemService *SystemService
}

func (c *SystemController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
}

func (c *SystemController) RegisterProtectedRoutes(router gin.IRoutes) {
	router.GET("/system/stats", c.GetSystemStats)
}

// Healthcheck
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (c *SystemController) Healthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSystemStats
// @Summary Host resource usage
// @Description Memory, disk and database reachability for the admin panel
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SystemStats
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /system/stats [get]
func (c *SystemController) GetSystemStats(ctx *gin.Context) {
	stats, err := c.systemService.GetSystemStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read system stats"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
