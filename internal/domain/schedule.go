package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Saved schedule validation errors.
var (
	ErrEmptyScheduleID     = errors.New("schedule ID cannot be empty")
	ErrEmptyScheduleUserID = errors.New("schedule user ID cannot be empty")
	ErrEmptyScheduleName   = errors.New("schedule name cannot be empty")
	ErrScheduleNameTooLong = errors.New("schedule name must be at most 120 characters")
	ErrEmptySchedulePlan   = errors.New("schedule plan cannot be empty")
)

// MaxScheduleNameLength bounds SavedSchedule.Name.
const MaxScheduleNameLength = 120

// SavedSchedule is a generated plan a user chose to keep, together with the
// wizard inputs that produced it.
type SavedSchedule struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Name      string          `json:"name"`
	Plan      StudyPlan       `json:"plan"`
	Inputs    json.RawMessage `json:"inputs,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewSavedSchedule builds a validated SavedSchedule with a fresh ID.
func NewSavedSchedule(userID uuid.UUID, name string, plan StudyPlan, inputs json.RawMessage) (*SavedSchedule, error) {
	s := &SavedSchedule{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Plan:      plan,
		Inputs:    inputs,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the schedule's fields.
func (s *SavedSchedule) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyScheduleID
	}
	if s.UserID == uuid.Nil {
		return ErrEmptyScheduleUserID
	}
	if s.Name == "" {
		return ErrEmptyScheduleName
	}
	if len(s.Name) > MaxScheduleNameLength {
		return ErrScheduleNameTooLong
	}
	if len(s.Plan.Days) == 0 {
		return ErrEmptySchedulePlan
	}
	if len(s.Inputs) > 0 && !json.Valid(s.Inputs) {
		return NewValidationError("inputs", "must be valid JSON", ErrInvalidFormat)
	}
	return nil
}
