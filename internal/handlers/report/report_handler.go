// handlers/report_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/pkg/response"
	"github.com/worksite/onsite_backend/internal/reports"
	geoService "github.com/worksite/onsite_backend/internal/services/geo"
	shiftService "github.com/worksite/onsite_backend/internal/services/shift"
)

type ReportHandler struct {
	shifts *shiftService.Service
	geo    *geoService.GeoTrackService
}

func NewReportHandler(shifts *shiftService.Service, geo *geoService.GeoTrackService) *ReportHandler {
	return &ReportHandler{shifts: shifts, geo: geo}
}

// CSVHandler streams the shift report as text/csv. The shift and breadcrumb
// reads are two separate statements with no transaction between them; samples
// landing in that window may be missed, which is accepted for a report.
func (h *ReportHandler) CSVHandler(w http.ResponseWriter, r *http.Request) {
	shift, crumbs, ok := h.fetch(w, r)
	if !ok {
		return
	}

	csv := reports.BuildShiftReportCSV(shift, crumbs)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="shift_report.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}

// XLSXHandler streams the same report as a workbook.
func (h *ReportHandler) XLSXHandler(w http.ResponseWriter, r *http.Request) {
	shift, crumbs, ok := h.fetch(w, r)
	if !ok {
		return
	}

	file, err := reports.BuildShiftReportXLSX(shift, crumbs)
	if err != nil {
		log.Printf("xlsx build error: %v", err)
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="shift_report.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if err := file.Write(w); err != nil {
		log.Printf("xlsx write error: %v", err)
	}
}

func (h *ReportHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.Shift, []models.Breadcrumb, bool) {
	shiftID := r.URL.Query().Get("shiftId")
	if shiftID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing shiftId")
		return nil, nil, false
	}

	s, err := h.shifts.Get(r.Context(), shiftID)
	if err != nil {
		if errors.Is(err, shiftService.ErrShiftNotFound) {
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
			return nil, nil, false
		}
		response.RespondWithStoreError(w, err)
		return nil, nil, false
	}

	bs, err := h.geo.ListForShift(r.Context(), shiftID)
	if err != nil {
		response.RespondWithStoreError(w, err)
		return nil, nil, false
	}

	return s, bs, true
}
