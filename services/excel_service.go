package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"gfabackend/models"
)

// Excel rendering is the presentation edge: this is the only place areas are
// rounded (2 dp via number format), never inside the engine.

const (
	scheduleSheet = "Room Schedule"
	summarySheet  = "Area Summary"
)

// BuildScheduleWorkbook renders a building schedule into a styled workbook
// with a per-room schedule sheet and an area summary sheet.
func BuildScheduleWorkbook(schedule models.BuildingSchedule, projectName string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("excel: create schedule sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("excel: create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1") // Delete default sheet

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: "Arial", Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F3864"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Family: "Arial", Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: header style: %w", err)
	}

	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 10, Family: "Arial"},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#D6E4F0"}, Pattern: 1},
		CustomNumFmt: strPtr("#,##0.00"),
	})
	if err != nil {
		return nil, fmt.Errorf("excel: subtotal style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11, Family: "Arial", Color: "#FFFFFF"},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#70AD47"}, Pattern: 1},
		CustomNumFmt: strPtr("#,##0.00"),
	})
	if err != nil {
		return nil, fmt.Errorf("excel: total style: %w", err)
	}

	areaStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr("#,##0.00")})
	if err != nil {
		return nil, fmt.Errorf("excel: area style: %w", err)
	}

	if err := writeRoomSchedule(f, schedule, projectName, titleStyle, headerStyle, subtotalStyle, areaStyle); err != nil {
		return nil, err
	}
	if err := writeAreaSummary(f, schedule, projectName, titleStyle, headerStyle, totalStyle, areaStyle); err != nil {
		return nil, err
	}
	return f, nil
}

// ScheduleWorkbookBytes builds the workbook and returns the raw xlsx bytes
// for storage and streaming.
func ScheduleWorkbookBytes(schedule models.BuildingSchedule, projectName string) ([]byte, error) {
	f, err := BuildScheduleWorkbook(schedule, projectName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string { return &s }

func efficiencyRatio(nofa, gfa float64) string {
	if gfa <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", 100*nofa/gfa)
}

func writeRoomSchedule(f *excelize.File, schedule models.BuildingSchedule, projectName string, titleStyle, headerStyle, subtotalStyle, areaStyle int) error {
	if projectName == "" {
		projectName = "Area Schedule"
	}
	f.SetCellValue(scheduleSheet, "A1", fmt.Sprintf("%s — GFA / NOFA Room Schedule", projectName))
	f.SetCellValue(scheduleSheet, "A2", fmt.Sprintf("Rule table: %s    Generated: %s",
		schedule.TableVersion, time.Now().Format("2006-01-02")))
	f.MergeCell(scheduleSheet, "A1", "G1")
	f.MergeCell(scheduleSheet, "A2", "G2")
	f.SetCellStyle(scheduleSheet, "A1", "G1", titleStyle)
	f.SetRowHeight(scheduleSheet, 1, 26)

	headers := []string{"Floor", "Room ID", "Category", "Treatment", "Cap Group", "Area (m²)", "In NOFA"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return fmt.Errorf("excel: header cell: %w", err)
		}
		f.SetCellValue(scheduleSheet, cell, header)
	}
	f.SetCellStyle(scheduleSheet, "A4", "G4", headerStyle)
	f.SetRowHeight(scheduleSheet, 4, 28)

	row := 5
	for _, floor := range schedule.Floors {
		var floorArea float64
		for _, room := range floor.Rooms {
			nofaFlag := ""
			if room.Treatment == models.TreatmentCounted && room.CountsTowardNofa {
				nofaFlag = "Yes"
			}
			f.SetCellValue(scheduleSheet, fmt.Sprintf("A%d", row), floor.FloorID)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("B%d", row), room.ID)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("C%d", row), room.Category)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("D%d", row), string(room.Treatment))
			f.SetCellValue(scheduleSheet, fmt.Sprintf("E%d", row), room.CapGroup)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("F%d", row), room.Area)
			f.SetCellValue(scheduleSheet, fmt.Sprintf("G%d", row), nofaFlag)
			f.SetCellStyle(scheduleSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), areaStyle)
			floorArea += room.Area
			row++
		}

		// floor subtotal: GFA / NOFA / exempt for this floor
		f.SetCellValue(scheduleSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Floor Subtotal — %s", floor.FloorID))
		f.SetCellValue(scheduleSheet, fmt.Sprintf("C%d", row),
			fmt.Sprintf("GFA %.2f    NOFA %.2f    Exempt %.2f", floor.GFA, floor.NOFA, floor.ExemptTotal))
		f.SetCellValue(scheduleSheet, fmt.Sprintf("F%d", row), floorArea)
		f.MergeCell(scheduleSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("E%d", row))
		f.SetCellStyle(scheduleSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), subtotalStyle)
		row += 2
	}

	widths := []float64{14, 14, 22, 14, 16, 12, 10}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: column name: %w", err)
		}
		f.SetColWidth(scheduleSheet, col, col, width)
	}
	return nil
}

func writeAreaSummary(f *excelize.File, schedule models.BuildingSchedule, projectName string, titleStyle, headerStyle, totalStyle, areaStyle int) error {
	if projectName == "" {
		projectName = "Area Schedule"
	}
	f.SetCellValue(summarySheet, "A1", fmt.Sprintf("%s — Area Summary", projectName))
	f.MergeCell(summarySheet, "A1", "F1")
	f.SetCellStyle(summarySheet, "A1", "F1", titleStyle)
	f.SetRowHeight(summarySheet, 1, 26)

	headers := []string{"Floor", "GFA (m²)", "NOFA (m²)", "Exempt (m²)", "NOFA/GFA", "Rooms"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return fmt.Errorf("excel: summary header cell: %w", err)
		}
		f.SetCellValue(summarySheet, cell, header)
	}
	f.SetCellStyle(summarySheet, "A3", "F3", headerStyle)

	row := 4
	for _, floor := range schedule.Floors {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), floor.FloorID)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), floor.GFA)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), floor.NOFA)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), floor.ExemptTotal)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), efficiencyRatio(floor.NOFA, floor.GFA))
		f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), len(floor.Rooms))
		f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), areaStyle)
		row++
	}

	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Building Total")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), schedule.TotalGFA)
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), schedule.TotalNOFA)
	f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), schedule.TotalExempt)
	f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), efficiencyRatio(schedule.TotalNOFA, schedule.TotalGFA))
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), totalStyle)
	row += 2

	// concession cap breakdown, per floor and group
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "APP-151 Concession Caps")
	f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row))
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), titleStyle)
	row++

	capHeaders := []string{"Floor / Group", "Requested (m²)", "Cap (m²)", "Granted (m²)", "Reclassified (m²)"}
	for i, header := range capHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("excel: cap header cell: %w", err)
		}
		f.SetCellValue(summarySheet, cell, header)
	}
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), headerStyle)
	row++

	for _, floor := range schedule.Floors {
		for _, group := range floor.CapGroups {
			f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s / %s", floor.FloorID, group.CapGroup))
			f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), group.ExemptRequested)
			f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), group.Cap)
			f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), group.ExemptGranted)
			f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), group.ExcessReclassified)
			f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("E%d", row), areaStyle)
			row++
		}
	}

	var warned bool
	for _, floor := range schedule.Floors {
		if len(floor.Warnings) == 0 {
			continue
		}
		if !warned {
			row++
			f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Warnings")
			f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row))
			f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), titleStyle)
			row++
			warned = true
		}
		for _, warning := range floor.Warnings {
			f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s: %s", floor.FloorID, warning))
			f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row))
			row++
		}
	}

	widths := []float64{26, 16, 16, 16, 12, 10}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: summary column name: %w", err)
		}
		f.SetColWidth(summarySheet, col, col, width)
	}
	return nil
}
