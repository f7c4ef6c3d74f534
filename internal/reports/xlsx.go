// reports/xlsx.go
package reports

import (
	"fmt"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// BuildShiftReportXLSX renders the same report as the CSV variant as a
// workbook with a Summary and a Breadcrumbs sheet.
func BuildShiftReportXLSX(shift *models.Shift, crumbs []models.Breadcrumb) (*excelize.File, error) {
	f := excelize.NewFile()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"key", "value"},
		{"shift_id", shift.ID},
		{"site_id", shift.SiteID},
		{"worker_email", shift.WorkerEmail},
		{"started_at", formatTime(&shift.StartedAt)},
		{"ended_at", formatTime(shift.EndedAt)},
		{"duration_minutes", durationMinutes(shift)},
		{"breadcrumbs_count", len(crumbs)},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const crumbSheet = "Breadcrumbs"
	if _, err := f.NewSheet(crumbSheet); err != nil {
		return nil, err
	}

	header := []interface{}{"id", "shift_id", "at", "lat", "lng", "accuracy_m"}
	if err := f.SetSheetRow(crumbSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, b := range crumbs {
		var accuracy interface{}
		if b.AccuracyM != nil {
			accuracy = *b.AccuracyM
		}
		row := []interface{}{b.ID, b.ShiftID, formatTime(&b.At), b.Lat, b.Lng, accuracy}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(crumbSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
