package handlers

import (
	"fmt"
	"net/http"

	"gfabackend/storage"
	"gfabackend/utils"

	"github.com/gin-gonic/gin"
)

// DownloadExcel godoc
// @Summary      Download the Excel schedule
// @Tags         download
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        download_id  path  string  true  "Download ID"
// @Success      200  {file}    file
// @Failure      410  {object}  map[string]string
// @Router       /api/download/{download_id} [get]
func DownloadExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("download_id")
		report, ok := storage.GetStore().Get(id)
		if !ok {
			c.JSON(http.StatusGone, gin.H{"error": "download id unknown or expired"})
			return
		}

		filename := utils.SanitizeFilename(report.ProjectName) + "_area_schedule.xlsx"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			report.Excel)
	}
}

// DownloadPDF godoc
// @Summary      Download the PDF summary
// @Tags         download
// @Produce      application/pdf
// @Param        download_id  path  string  true  "Download ID"
// @Success      200  {file}    file
// @Failure      410  {object}  map[string]string
// @Router       /api/report_pdf/{download_id} [get]
func DownloadPDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("download_id")
		report, ok := storage.GetStore().Get(id)
		if !ok {
			c.JSON(http.StatusGone, gin.H{"error": "download id unknown or expired"})
			return
		}

		filename := utils.SanitizeFilename(report.ProjectName) + "_area_summary.pdf"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, "application/pdf", report.PDF)
	}
}
