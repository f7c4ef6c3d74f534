// Package reports renders a shift's summary and breadcrumb history for
// admin export. Formatters are pure: they consume already-fetched rows.
package reports

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/worksite/onsite_backend/internal/models"
)

// BuildShiftReportCSV renders a section,key,value summary block followed by
// a breadcrumb block, one line per sample in the given order.
func BuildShiftReportCSV(shift *models.Shift, crumbs []models.Breadcrumb) string {
	var lines []string
	lines = append(lines, "section,key,value")

	summaryRows := [][]string{
		{"shift_summary", "shift_id", shift.ID},
		{"shift_summary", "site_id", shift.SiteID},
		{"shift_summary", "worker_email", shift.WorkerEmail},
		{"shift_summary", "started_at", formatTime(&shift.StartedAt)},
		{"shift_summary", "ended_at", formatTime(shift.EndedAt)},
		{"shift_summary", "duration_minutes", durationMinutes(shift)},
		{"shift_summary", "breadcrumbs_count", strconv.Itoa(len(crumbs))},
	}
	for _, row := range summaryRows {
		lines = append(lines, joinCSV(row))
	}

	lines = append(lines, "")
	lines = append(lines, "section,id,shift_id,at,lat,lng,accuracy_m")

	for _, b := range crumbs {
		accuracy := ""
		if b.AccuracyM != nil {
			accuracy = formatFloat(*b.AccuracyM)
		}
		lines = append(lines, joinCSV([]string{
			"breadcrumbs",
			b.ID,
			b.ShiftID,
			formatTime(&b.At),
			formatFloat(b.Lat),
			formatFloat(b.Lng),
			accuracy,
		}))
	}

	return strings.Join(lines, "\n")
}

// durationMinutes rounds the shift length to whole minutes, clamped at zero.
// Open shifts render as an empty field.
func durationMinutes(shift *models.Shift) string {
	if shift.EndedAt == nil {
		return ""
	}
	minutes := int(math.Round(shift.EndedAt.Sub(shift.StartedAt).Minutes()))
	if minutes < 0 {
		minutes = 0
	}
	return strconv.Itoa(minutes)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinCSV(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeCSV(f)
	}
	return strings.Join(escaped, ",")
}

// escapeCSV wraps fields containing a comma, quote or newline in double
// quotes, doubling any embedded quotes.
func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
