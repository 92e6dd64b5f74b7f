package api

import (
	"net/http"

	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/service"
)

// SyllabusHandler serves the syllabus browsing endpoints.
type SyllabusHandler struct {
	syllabus service.SyllabusService
}

// NewSyllabusHandler creates a SyllabusHandler.
func NewSyllabusHandler(syllabus service.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{syllabus: syllabus}
}

// Metadata handles GET /api/metadata.
func (h *SyllabusHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	md, err := h.syllabus.Metadata(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load syllabus")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, md)
}

// Chapters handles GET /api/syllabus/chapters. Only subject is required.
func (h *SyllabusHandler) Chapters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := domain.SyllabusPath{
		University: q.Get("university"),
		Faculty:    q.Get("faculty"),
		Course:     q.Get("course"),
		Semester:   q.Get("semester"),
		Subject:    q.Get("subject"),
	}

	list, err := h.syllabus.Chapters(r.Context(), path)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load chapters")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, list)
}
