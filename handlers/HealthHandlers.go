package handlers

import (
	"net/http"

	"gfabackend/services"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/health [get]
func HealthCheck(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"table_version": engine.Table().Version(),
			"cap_rate":      engine.CapRate(),
		})
	}
}
