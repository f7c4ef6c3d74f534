// handlers/breadcrumb_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/pkg/response"
	services "github.com/worksite/onsite_backend/internal/services/geo"
)

type BreadcrumbHandler struct {
	geo *services.GeoTrackService
}

func NewBreadcrumbHandler(geo *services.GeoTrackService) *BreadcrumbHandler {
	return &BreadcrumbHandler{geo: geo}
}

// RecordHandler appends one location sample. Lat/lng decode into pointers so
// an absent field is distinguishable from a legitimate zero coordinate.
func (h *BreadcrumbHandler) RecordHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShiftID   string   `json:"shiftId"`
		At        string   `json:"at"`
		Lat       *float64 `json:"lat"`
		Lng       *float64 `json:"lng"`
		AccuracyM *float64 `json:"accuracyM"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.ShiftID == "" || body.At == "" || body.Lat == nil || body.Lng == nil {
		response.RespondWithError(w, http.StatusBadRequest, "Missing shiftId, at, lat or lng")
		return
	}

	at, err := time.Parse(time.RFC3339, body.At)
	if err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid 'at' timestamp")
		return
	}

	crumb := models.Breadcrumb{
		ShiftID:   body.ShiftID,
		At:        at,
		Lat:       *body.Lat,
		Lng:       *body.Lng,
		AccuracyM: body.AccuracyM,
	}
	if err := h.geo.Record(r.Context(), &crumb); err != nil {
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"ok": true,
		"id": crumb.ID,
	})
}

func (h *BreadcrumbHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	shiftID := r.URL.Query().Get("shiftId")
	if shiftID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing shiftId")
		return
	}

	crumbs, err := h.geo.ListForShift(r.Context(), shiftID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidShiftID) {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid shiftId format")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}
	if crumbs == nil {
		crumbs = []models.Breadcrumb{}
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"breadcrumbs": crumbs})
}

// LastLocationsHandler backs the supervisor map view.
func (h *BreadcrumbHandler) LastLocationsHandler(w http.ResponseWriter, r *http.Request) {
	siteID := r.URL.Query().Get("siteId")
	if siteID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing siteId")
		return
	}

	locations, err := h.geo.LastLocations(r.Context(), siteID)
	if err != nil {
		response.RespondWithStoreError(w, err)
		return
	}
	if locations == nil {
		locations = []models.LastLocation{}
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}
