package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/service"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	// AccessToken authorizes API calls.
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresAt is the RFC 3339 expiry of the access token.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse carries a rotated token pair.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// PlanKnobs are the optional scheduling knobs shared by plan requests.
// Range checks happen in the planner so every knob reports under its own
// field name.
type PlanKnobs struct {
	DailyHours  *int    `json:"daily_hours,omitempty"`
	SessionMins *int    `json:"session_mins,omitempty"`
	BreakMins   *int    `json:"break_mins,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
}

func (k PlanKnobs) overrides() service.OptionOverrides {
	return service.OptionOverrides{
		DailyHours:  k.DailyHours,
		SessionMins: k.SessionMins,
		BreakMins:   k.BreakMins,
		StartTime:   k.StartTime,
	}
}

// GenerateScheduleRequest defines the payload for /api/generate-schedule.
// University, faculty, course and semester are only used to look up the
// chapters of exams that list none.
type GenerateScheduleRequest struct {
	University string            `json:"university,omitempty"`
	Faculty    string            `json:"faculty,omitempty"`
	Course     string            `json:"course,omitempty"`
	Semester   string            `json:"semester,omitempty"`
	Exams      []domain.ExamSpec `json:"exams"             validate:"max=100,dive"`
	Mastery    domain.MasteryMap `json:"mastery,omitempty"`
	PlanKnobs
}

func (req *GenerateScheduleRequest) toService(userID uuid.UUID) service.GenerateScheduleRequest {
	return service.GenerateScheduleRequest{
		UserID: userID,
		Program: domain.SyllabusPath{
			University: req.University,
			Faculty:    req.Faculty,
			Course:     req.Course,
			Semester:   req.Semester,
		},
		Exams:   req.Exams,
		Mastery: req.Mastery,
		Options: req.PlanKnobs.overrides(),
	}
}

// ReplanDayRequest defines the payload for /api/replan-day.
type ReplanDayRequest struct {
	Subject string `json:"subject"          validate:"required,max=200"`
	Focus   string `json:"focus,omitempty"  validate:"max=200"`
	Hours   *int   `json:"hours,omitempty"`
	PlanKnobs
}

// ReplanDayResponse wraps a rebuilt day.
type ReplanDayResponse struct {
	Tasks []domain.TimetableBlock `json:"tasks"`
}

// SaveScheduleRequest defines the payload for POST /api/schedules.
type SaveScheduleRequest struct {
	Name string           `json:"name"             validate:"required,max=120"`
	Plan domain.StudyPlan `json:"plan"`
	// Inputs are the wizard answers that produced the plan, stored verbatim.
	Inputs json.RawMessage `json:"inputs,omitempty"`
}

// ScheduleSummary is one entry of the saved schedule listing.
type ScheduleSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TotalDays int       `json:"total_days"`
	FirstDate string    `json:"first_date,omitempty"`
	LastDate  string    `json:"last_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func summarizeSchedule(s *domain.SavedSchedule) ScheduleSummary {
	out := ScheduleSummary{
		ID:        s.ID,
		Name:      s.Name,
		TotalDays: len(s.Plan.Days),
		CreatedAt: s.CreatedAt,
	}
	if n := len(s.Plan.Days); n > 0 {
		out.FirstDate = s.Plan.Days[0].Date
		out.LastDate = s.Plan.Days[n-1].Date
	}
	return out
}

// ScheduleListResponse is returned by GET /api/schedules.
type ScheduleListResponse struct {
	Schedules []ScheduleSummary `json:"schedules"`
}

// LogSessionRequest defines the payload for POST /api/sessions.
type LogSessionRequest struct {
	Subject          string `json:"subject"                     validate:"required,max=200"`
	Topic            string `json:"topic"                       validate:"required,max=200"`
	DurationMins     int    `json:"duration_mins"               validate:"min=1,max=1440"`
	FocusScore       int    `json:"focus_score"                 validate:"min=0,max=100"`
	DistractionCount int    `json:"distraction_count,omitempty" validate:"min=0"`
	IdleSeconds      int    `json:"idle_seconds,omitempty"      validate:"min=0"`
	Abandoned        bool   `json:"abandoned,omitempty"`
}

func (req *LogSessionRequest) toService() service.SessionInput {
	return service.SessionInput{
		Subject:          req.Subject,
		Topic:            req.Topic,
		DurationMins:     req.DurationMins,
		FocusScore:       req.FocusScore,
		DistractionCount: req.DistractionCount,
		IdleSeconds:      req.IdleSeconds,
		Abandoned:        req.Abandoned,
	}
}

// MasteryResponse is returned by GET /api/mastery.
type MasteryResponse struct {
	Mastery domain.MasteryMap `json:"mastery"`
}
