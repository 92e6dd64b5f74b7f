package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Study session validation errors.
var (
	ErrEmptySessionID      = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID  = errors.New("session user ID cannot be empty")
	ErrEmptySessionSubject = errors.New("session subject cannot be empty")
	ErrEmptySessionTopic   = errors.New("session topic cannot be empty")
	ErrInvalidDuration     = errors.New("session duration must be positive")
	ErrInvalidFocusScore   = errors.New("focus score must be between 0 and 100")
	ErrNegativeCounter     = errors.New("session counters cannot be negative")
)

// Mastery update weights applied when a session is logged.
const (
	// MasteryRetention is the share of the previous score kept.
	MasteryRetention = 0.7
	// MasteryFocusWeight is the share taken from the session's focus score.
	MasteryFocusWeight = 0.3
	// AbandonPenalty is subtracted when a session was abandoned.
	AbandonPenalty = 5
)

// StudySession is one logged block of focused study.
type StudySession struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Subject          string    `json:"subject"`
	Topic            string    `json:"topic"`
	DurationMins     int       `json:"duration_mins"`
	FocusScore       int       `json:"focus_score"`
	DistractionCount int       `json:"distraction_count"`
	IdleSeconds      int       `json:"idle_seconds"`
	Abandoned        bool      `json:"abandoned"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewStudySession builds a validated session with a fresh ID.
func NewStudySession(userID uuid.UUID, subject, topic string, durationMins, focusScore int) (*StudySession, error) {
	s := &StudySession{
		ID:           uuid.New(),
		UserID:       userID,
		Subject:      strings.TrimSpace(subject),
		Topic:        strings.TrimSpace(topic),
		DurationMins: durationMins,
		FocusScore:   focusScore,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the session's fields.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}
	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}
	if s.Subject == "" {
		return ErrEmptySessionSubject
	}
	if s.Topic == "" {
		return ErrEmptySessionTopic
	}
	if s.DurationMins <= 0 {
		return ErrInvalidDuration
	}
	if s.FocusScore < MinMasteryScore || s.FocusScore > MaxMasteryScore {
		return ErrInvalidFocusScore
	}
	if s.DistractionCount < 0 || s.IdleSeconds < 0 {
		return ErrNegativeCounter
	}
	return nil
}

// NextMastery returns the topic's mastery after this session, given the
// previous score. Use NeutralMasteryScore when there is no previous score.
func (s *StudySession) NextMastery(previous int) int {
	if s.Abandoned {
		return ClampMastery(previous - AbandonPenalty)
	}
	blended := MasteryRetention*float64(previous) + MasteryFocusWeight*float64(s.FocusScore)
	return ClampMastery(int(math.Round(blended)))
}
