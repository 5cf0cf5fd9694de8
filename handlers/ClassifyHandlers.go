package handlers

import (
	"errors"
	"net/http"

	"gfabackend/models"
	"gfabackend/services"

	"github.com/gin-gonic/gin"
)

// statusForEngineError maps classification failures to HTTP codes. Rule
// violations in an otherwise well-formed payload are 422; structurally bad
// requests stay 400.
func statusForEngineError(err error) int {
	var unknown *services.UnknownCategoryError
	var missing *services.MissingAttributeError
	var invalid *services.InvalidAreaError
	var empty *services.EmptyBuildingError
	switch {
	case errors.As(err, &unknown), errors.As(err, &missing), errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.As(err, &empty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ClassifyRooms godoc
// @Summary      Classify rooms without aggregation
// @Description  Resolves each room to COUNTED or EXEMPT against the active rule table. No caps are applied.
// @Tags         classify
// @Accept       json
// @Produce      json
// @Param        body  body      models.ClassifyRequest  true  "Rooms to classify"
// @Success      200   {object}  models.ClassifyResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/classify [post]
func ClassifyRooms(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ClassifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Rooms) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rooms must not be empty"})
			return
		}

		classified := make([]models.ClassifiedRoom, 0, len(req.Rooms))
		for _, room := range req.Rooms {
			cr, err := engine.ClassifyRoom(room)
			if err != nil {
				c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
				return
			}
			classified = append(classified, cr)
		}

		c.JSON(http.StatusOK, models.ClassifyResponse{
			TableVersion: engine.Table().Version(),
			Rooms:        classified,
		})
	}
}
