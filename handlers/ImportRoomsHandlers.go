package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"gfabackend/models"
	"gfabackend/services"

	"github.com/gin-gonic/gin"
)

var roomsCSVHeader = []string{"floor", "room_id", "category", "area", "attributes"}

// parseAttributes decodes the "k=v;k=v" attribute column.
func parseAttributes(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	attrs := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		attrs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// parseRoomsCSV reads the import format into floors, preserving the order in
// which each floor first appears.
func parseRoomsCSV(records [][]string) ([]models.FloorRooms, error) {
	var floors []models.FloorRooms
	index := make(map[string]int)

	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 4 {
			return nil, &csvRowError{row: i + 1, reason: "expected at least 4 columns (floor, room_id, category, area)"}
		}
		floorID := strings.TrimSpace(record[0])
		if floorID == "" {
			return nil, &csvRowError{row: i + 1, reason: "floor must not be empty"}
		}
		area, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, &csvRowError{row: i + 1, reason: "area is not a number: " + record[3]}
		}
		room := models.Room{
			ID:       strings.TrimSpace(record[1]),
			Category: strings.TrimSpace(record[2]),
			Area:     area,
			FloorID:  floorID,
		}
		if len(record) > 4 {
			room.Attributes = parseAttributes(record[4])
		}

		pos, ok := index[floorID]
		if !ok {
			pos = len(floors)
			index[floorID] = pos
			floors = append(floors, models.FloorRooms{FloorID: floorID})
		}
		floors[pos].Rooms = append(floors[pos].Rooms, room)
	}
	return floors, nil
}

type csvRowError struct {
	row    int
	reason string
}

func (e *csvRowError) Error() string {
	return "row " + strconv.Itoa(e.row) + ": " + e.reason
}

// DownloadRoomsTemplate godoc
// @Summary      Download the room schedule CSV template
// @Tags         import
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/rooms_template [get]
func DownloadRoomsTemplate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		w.Write(roomsCSVHeader)
		w.Write([]string{"1F", "R-101", "flat", "42.5", ""})
		w.Write([]string{"1F", "R-102", "balcony", "3.2", "enclosed=false"})
		w.Write([]string{"2F", "R-201", "plant room", "18.0", "mandatory=true"})
		w.Flush()

		c.Header("Content-Disposition", "attachment; filename=rooms_template.csv")
		c.Data(http.StatusOK, "text/csv", []byte(sb.String()))
	}
}

// ImportRoomsCSV godoc
// @Summary      Import a room schedule from CSV and analyse it
// @Description  Accepts a CSV file with columns floor, room_id, category, area, attributes. Floors keep the order of their first row.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true   "CSV file"
// @Param        project_name  formData  string  false  "Project name"
// @Success      200  {object}  models.AnalyseResponse
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/import_rooms_csv [post]
func ImportRoomsCSV(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not found"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open file"})
			return
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid CSV: " + err.Error()})
			return
		}
		if len(records) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV has no data rows"})
			return
		}

		floors, err := parseRoomsCSV(records)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		runAnalysis(c, engine, c.PostForm("project_name"), floors)
	}
}
