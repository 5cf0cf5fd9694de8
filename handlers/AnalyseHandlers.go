package handlers

import (
	"fmt"
	"net/http"

	"gfabackend/models"
	"gfabackend/services"
	"gfabackend/storage"

	"github.com/gin-gonic/gin"
)

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

// runAnalysis aggregates the building, renders both artifacts and stores
// them under a fresh download id.
func runAnalysis(c *gin.Context, engine *services.Engine, projectName string, floors []models.FloorRooms) {
	schedule, err := engine.AggregateBuilding(c.Request.Context(), floors)
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}

	store := storage.GetStore()
	id := store.NewID()
	excelURL := fmt.Sprintf("%s/api/download/%s", baseURL(c), id)
	pdfURL := fmt.Sprintf("%s/api/report_pdf/%s", baseURL(c), id)

	excelBytes, err := services.ScheduleWorkbookBytes(schedule, projectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build Excel schedule: " + err.Error()})
		return
	}

	pdfBytes, err := services.BuildSummaryPDF(schedule, projectName, excelURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build PDF summary: " + err.Error()})
		return
	}

	store.Put(id, projectName, excelBytes, pdfBytes)

	c.JSON(http.StatusOK, models.AnalyseResponse{
		Schedule:   schedule,
		DownloadID: id,
		ExcelURL:   excelURL,
		PdfURL:     pdfURL,
	})
}

// AnalyseFloor godoc
// @Summary      Analyse a single floor
// @Description  Classifies the rooms, applies the concession caps and returns the schedule with download links.
// @Tags         analyse
// @Accept       json
// @Produce      json
// @Param        body  body      models.AnalyseRequest  true  "Floor rooms"
// @Success      200   {object}  models.AnalyseResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/analyse [post]
func AnalyseFloor(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.FloorID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "floor_id is required"})
			return
		}
		floors := []models.FloorRooms{{FloorID: req.FloorID, Rooms: req.Rooms}}
		runAnalysis(c, engine, req.ProjectName, floors)
	}
}

// AnalyseBuilding godoc
// @Summary      Analyse a multi-floor building
// @Description  Processes every floor, applies per-floor concession caps and rolls the totals up to the building.
// @Tags         analyse
// @Accept       json
// @Produce      json
// @Param        body  body      models.BatchAnalyseRequest  true  "Floors in display order"
// @Success      200   {object}  models.AnalyseResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/analyse/batch [post]
func AnalyseBuilding(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BatchAnalyseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		runAnalysis(c, engine, req.ProjectName, req.Floors)
	}
}
