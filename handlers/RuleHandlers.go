package handlers

import (
	"net/http"

	"gfabackend/models"
	"gfabackend/services"

	"github.com/gin-gonic/gin"
)

// GetRules godoc
// @Summary      List classification rules
// @Tags         rules
// @Produce      json
// @Success      200  {object}  models.RuleListResponse
// @Router       /api/rules [get]
func GetRules(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := engine.Table().Entries()
		c.JSON(http.StatusOK, models.RuleListResponse{
			TableVersion: engine.Table().Version(),
			Count:        len(entries),
			Rules:        entries,
		})
	}
}

// GetRuleByCategory godoc
// @Summary      Get rule for one category
// @Tags         rules
// @Produce      json
// @Param        category  path      string  true  "Room category"
// @Success      200       {object}  models.RuleEntry
// @Failure      404       {object}  map[string]string
// @Router       /api/rules/{category} [get]
func GetRuleByCategory(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		entry, ok := engine.Table().Lookup(category)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown category: " + category})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}
