package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"gfabackend/models"
)

// BuildSummaryPDF renders a one-page area summary of the building schedule.
// When downloadURL is non-empty a QR code linking to the Excel schedule is
// placed in the top-right corner.
func BuildSummaryPDF(schedule models.BuildingSchedule, projectName, downloadURL string) ([]byte, error) {
	if projectName == "" {
		projectName = "Area Schedule"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	// --- Header ---
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(150, 10, "GFA / NOFA AREA SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(150, 6, projectName)
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(150, 5, fmt.Sprintf("Rule table: %s", schedule.TableVersion))
	pdf.Ln(10)

	if downloadURL != "" {
		png, err := qrcode.Encode(downloadURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("pdf: encode QR: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("schedule-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("schedule-qr", 172, 10, 28, 28, false, opts, 0, "")
	}

	// --- Per-floor table ---
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(40, 8, "Floor", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "GFA (m2)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 8, "NOFA (m2)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 8, "Exempt (m2)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, floor := range schedule.Floors {
		pdf.CellFormat(40, 8, floor.FloorID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", floor.GFA), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", floor.NOFA), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", floor.ExemptTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 8, "Building Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", schedule.TotalGFA), "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", schedule.TotalNOFA), "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%.2f", schedule.TotalExempt), "1", 1, "R", true, 0, "")
	pdf.Ln(8)

	// --- Concession caps ---
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "APP-151 Concession Caps")
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(55, 7, "Floor / Group", "1", 0, "L", true, 0, "")
	pdf.CellFormat(34, 7, "Requested", "1", 0, "C", true, 0, "")
	pdf.CellFormat(33, 7, "Cap", "1", 0, "C", true, 0, "")
	pdf.CellFormat(34, 7, "Granted", "1", 0, "C", true, 0, "")
	pdf.CellFormat(34, 7, "Reclassified", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, floor := range schedule.Floors {
		for _, group := range floor.CapGroups {
			pdf.CellFormat(55, 7, fmt.Sprintf("%s / %s", floor.FloorID, group.CapGroup), "1", 0, "L", false, 0, "")
			pdf.CellFormat(34, 7, fmt.Sprintf("%.2f", group.ExemptRequested), "1", 0, "R", false, 0, "")
			pdf.CellFormat(33, 7, fmt.Sprintf("%.2f", group.Cap), "1", 0, "R", false, 0, "")
			pdf.CellFormat(34, 7, fmt.Sprintf("%.2f", group.ExemptGranted), "1", 0, "R", false, 0, "")
			pdf.CellFormat(34, 7, fmt.Sprintf("%.2f", group.ExcessReclassified), "1", 1, "R", false, 0, "")
		}
	}

	var warned bool
	for _, floor := range schedule.Floors {
		for _, warning := range floor.Warnings {
			if !warned {
				pdf.Ln(6)
				pdf.SetFont("Arial", "B", 11)
				pdf.Cell(190, 7, "Warnings")
				pdf.Ln(8)
				pdf.SetFont("Arial", "", 9)
				warned = true
			}
			pdf.MultiCell(190, 5, fmt.Sprintf("%s: %s", floor.FloorID, warning), "", "L", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(190, 4,
		"Concession areas are subject to the overall 10% cap under PNAP APP-151. "+
			"Figures are for preliminary assessment only and do not constitute a submission to the Buildings Department.",
		"", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}
