package api

import (
	"log/slog"
	"net/http"

	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/service"
)

// PlanHandler serves plan generation and single-day replanning.
type PlanHandler struct {
	plans service.PlanService
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(plans service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// GenerateSchedule handles POST /api/generate-schedule. Anonymous callers
// are allowed; authenticated callers get their stored mastery applied.
func (h *PlanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req GenerateScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := getUserIDFromContext(r)
	plan, err := h.plans.GenerateSchedule(r.Context(), req.toService(userID))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate schedule")
		return
	}

	logger.FromContext(r.Context()).Info("schedule generated",
		slog.Int("exams", len(req.Exams)),
		slog.Int("days", plan.Summary.TotalDays))
	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

// ReplanDay handles POST /api/replan-day.
func (h *PlanHandler) ReplanDay(w http.ResponseWriter, r *http.Request) {
	var req ReplanDayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tasks, err := h.plans.ReplanDay(r.Context(), service.ReplanDayRequest{
		Subject: req.Subject,
		Focus:   req.Focus,
		Hours:   req.Hours,
		Options: req.PlanKnobs.overrides(),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to replan day")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ReplanDayResponse{Tasks: tasks})
}
