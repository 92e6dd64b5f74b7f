package api

import (
	"net/http"

	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/service"
)

// SessionHandler records study sessions and reports mastery.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// LogSession handles POST /api/sessions.
func (h *SessionHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req LogSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.sessions.LogSession(r.Context(), userID, req.toService())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record session")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, res)
}

// Mastery handles GET /api/mastery.
func (h *SessionHandler) Mastery(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	mastery, err := h.sessions.Mastery(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load mastery")
		return
	}
	if mastery == nil {
		mastery = map[string]map[string]int{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MasteryResponse{Mastery: mastery})
}
