package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gfabackend/models"
	"gfabackend/services"
	"gfabackend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	table, err := services.DefaultRuleTable()
	require.NoError(t, err)
	engine := services.NewEngine(table, services.DefaultCapRate)
	storage.InitStore(time.Hour)

	r := gin.New()
	r.GET("/api/health", HealthCheck(engine))
	r.GET("/api/rules", GetRules(engine))
	r.GET("/api/rules/:category", GetRuleByCategory(engine))
	r.POST("/api/classify", ClassifyRooms(engine))
	r.POST("/api/analyse", AnalyseFloor(engine))
	r.POST("/api/analyse/batch", AnalyseBuilding(engine))
	r.GET("/api/rooms_template", DownloadRoomsTemplate())
	r.POST("/api/import_rooms_csv", ImportRoomsCSV(engine))
	r.GET("/api/download/:download_id", DownloadExcel())
	r.GET("/api/report_pdf/:download_id", DownloadPDF())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, services.DefaultTableVersion, body["table_version"])
}

func TestGetRules(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rules", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.RuleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(body.Rules), body.Count)
	assert.NotEmpty(t, body.Rules)
}

func TestGetRuleByCategory(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rules/carpark", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.RuleEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "carpark", entry.CapGroup)

	w = doJSON(t, r, http.MethodGet, "/api/rules/mezzanine-x", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClassifyRooms(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classify", models.ClassifyRequest{
		Rooms: []models.Room{
			{ID: "R-1", Category: "flat", Area: 40},
			{ID: "B-1", Category: "balcony", Area: 3, Attributes: map[string]string{"enclosed": "false"}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body models.ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 2)
	assert.Equal(t, models.TreatmentCounted, body.Rooms[0].Treatment)
	assert.Equal(t, models.TreatmentExempt, body.Rooms[1].Treatment)
}

func TestClassifyUnknownCategoryIs422(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classify", models.ClassifyRequest{
		Rooms: []models.Room{{ID: "M-9", Category: "mezzanine-x", Area: 12}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "M-9")
}

func TestClassifyEmptyBodyIs400(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/classify", models.ClassifyRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyseAndDownload(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyse", models.AnalyseRequest{
		ProjectName: "Harbour Towers",
		FloorID:     "1/F",
		Rooms: []models.Room{
			{ID: "R-1", Category: "flat", Area: 1000},
			{ID: "P-1", Category: "carpark", Area: 150},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body models.AnalyseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.DownloadID)
	require.Len(t, body.Schedule.Floors, 1)
	assert.InDelta(t, 1050.0, body.Schedule.Floors[0].GFA, 1e-9)

	w = doJSON(t, r, http.MethodGet, "/api/download/"+body.DownloadID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Harbour_Towers")
	assert.Equal(t, "PK", w.Body.String()[:2])

	w = doJSON(t, r, http.MethodGet, "/api/report_pdf/"+body.DownloadID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestDownloadUnknownIDIs410(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/download/no-such-id", nil)
	assert.Equal(t, http.StatusGone, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/report_pdf/no-such-id", nil)
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestAnalyseMissingFloorIDIs400(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyse", models.AnalyseRequest{
		Rooms: []models.Room{{ID: "R-1", Category: "flat", Area: 40}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyseBatchEmptyIs400(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyse/batch", models.BatchAnalyseRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyseBatchRollup(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/analyse/batch", models.BatchAnalyseRequest{
		ProjectName: "Harbour Towers",
		Floors: []models.FloorRooms{
			{FloorID: "G/F", Rooms: []models.Room{{ID: "S-1", Category: "retail", Area: 300}}},
			{FloorID: "1/F", Rooms: []models.Room{{ID: "R-1", Category: "flat", Area: 500}}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body models.AnalyseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Schedule.Floors, 2)
	assert.Equal(t, "G/F", body.Schedule.Floors[0].FloorID)
	assert.InDelta(t, 800.0, body.Schedule.TotalGFA, 1e-9)
}

func TestRoomsTemplate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rooms_template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "floor,room_id,category,area,attributes")
}

func TestImportRoomsCSV(t *testing.T) {
	r := setupRouter(t)

	csvData := "floor,room_id,category,area,attributes\n" +
		"2/F,R-201,flat,400,\n" +
		"G/F,S-1,retail,300,\n" +
		"2/F,B-201,balcony,3.5,enclosed=false\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "rooms.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("project_name", "Harbour Towers"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import_rooms_csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.AnalyseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Schedule.Floors, 2)
	// floors keep first-appearance order from the file
	assert.Equal(t, "2/F", body.Schedule.Floors[0].FloorID)
	assert.Equal(t, "G/F", body.Schedule.Floors[1].FloorID)
}

func TestImportRoomsCSVBadRow(t *testing.T) {
	r := setupRouter(t)

	csvData := "floor,room_id,category,area,attributes\n" +
		"1/F,R-1,flat,not-a-number,\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "rooms.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import_rooms_csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "row 2")
}

func TestParseAttributes(t *testing.T) {
	assert.Nil(t, parseAttributes(""))
	assert.Equal(t, map[string]string{"enclosed": "false"}, parseAttributes("enclosed=false"))
	assert.Equal(t,
		map[string]string{"enclosed": "false", "mandatory": "true"},
		parseAttributes(" enclosed = false ; mandatory=true ;"))
}
