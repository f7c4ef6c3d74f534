// handlers/shift_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/pkg/response"
	services "github.com/worksite/onsite_backend/internal/services/shift"
)

type ShiftHandler struct {
	shifts *services.Service
}

func NewShiftHandler(shifts *services.Service) *ShiftHandler {
	return &ShiftHandler{shifts: shifts}
}

func (h *ShiftHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SiteID      string `json:"siteId"`
		WorkerEmail string `json:"workerEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.SiteID == "" || body.WorkerEmail == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing siteId or workerEmail")
		return
	}

	shift, err := h.shifts.Start(r.Context(), body.SiteID, body.WorkerEmail)
	if err != nil {
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{"shift": shift})
}

func (h *ShiftHandler) EndHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShiftID string `json:"shiftId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.ShiftID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing shiftId")
		return
	}

	shift, err := h.shifts.End(r.Context(), body.ShiftID)
	if err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"shift": shift})
}

func (h *ShiftHandler) EndAllHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SiteID string `json:"siteId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.SiteID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing siteId")
		return
	}

	ended, err := h.shifts.EndAllActive(r.Context(), body.SiteID)
	if err != nil {
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"ended": ended,
	})
}

// StatusHandler trusts the supplied workerEmail as the capability for the
// lookup; there is no session binding on this route.
func (h *ShiftHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	shiftID := r.URL.Query().Get("shiftId")
	workerEmail := r.URL.Query().Get("workerEmail")
	if shiftID == "" || workerEmail == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing shiftId or workerEmail")
		return
	}

	shift, err := h.shifts.Status(r.Context(), shiftID, workerEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrShiftNotFound):
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
		case errors.Is(err, services.ErrNotShiftOwner):
			response.RespondWithError(w, http.StatusForbidden, "Access denied")
		default:
			response.RespondWithStoreError(w, err)
		}
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"shift": shift})
}

func (h *ShiftHandler) ActiveHandler(w http.ResponseWriter, r *http.Request) {
	siteID := r.URL.Query().Get("siteId")
	if siteID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing siteId")
		return
	}

	shifts, err := h.shifts.ListActive(r.Context(), siteID)
	if err != nil {
		response.RespondWithStoreError(w, err)
		return
	}
	if shifts == nil {
		shifts = []models.Shift{}
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"shifts": shifts})
}

// DebugShiftHandler is a supervisor-only diagnostic fetch by raw id.
func (h *ShiftHandler) DebugShiftHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Missing id")
		return
	}

	shift, err := h.shifts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
			return
		}
		response.RespondWithStoreError(w, err)
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"shift": shift})
}
