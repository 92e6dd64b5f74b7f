package api

import (
	"net/http"

	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/service"
)

// ScheduleHandler serves the saved schedule endpoints. Every route requires
// an authenticated caller.
type ScheduleHandler struct {
	schedules service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(schedules service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// Save handles POST /api/schedules.
func (h *ScheduleHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SaveScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	saved, err := h.schedules.Save(r.Context(), userID, req.Name, req.Plan, req.Inputs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save schedule")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, saved)
}

// List handles GET /api/schedules, newest first.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	list, err := h.schedules.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list schedules")
		return
	}

	resp := ScheduleListResponse{Schedules: make([]ScheduleSummary, 0, len(list))}
	for _, s := range list {
		resp.Schedules = append(resp.Schedules, summarizeSchedule(s))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/schedules/{id}.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	saved, err := h.schedules.Get(r.Context(), userID, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load schedule")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, saved)
}

// Delete handles DELETE /api/schedules/{id}.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.schedules.Delete(r.Context(), userID, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete schedule")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
