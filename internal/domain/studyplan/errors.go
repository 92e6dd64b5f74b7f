package studyplan

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them with errors.Is.
var (
	ErrTimeFormat     = errors.New("invalid start time")
	ErrNoExams        = errors.New("no schedulable exams")
	ErrInvalidOption  = errors.New("invalid planning option")
	ErrHorizonTooLong = errors.New("planning horizon too long")
	// ErrNoCandidate is an internal consistency failure: a study day had no
	// exam left to prepare for.
	ErrNoCandidate = errors.New("no candidate exam for study day")
)

// TimeFormatError reports a start time that is not HH:MM.
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid start time %q: expected HH:MM", e.Value)
}

// Is matches ErrTimeFormat.
func (e *TimeFormatError) Is(target error) bool { return target == ErrTimeFormat }

// Field names the offending request field.
func (e *TimeFormatError) Field() string { return "start_time" }

// NoExamsError is returned when nothing remains to schedule.
type NoExamsError struct {
	Submitted int // exams in the request
	Dropped   int // exams whose date could not be resolved
	Past      int // resolved exams dated before today
}

func (e *NoExamsError) Error() string {
	return fmt.Sprintf(
		"no schedulable exams: %d submitted, %d with invalid dates, %d already past",
		e.Submitted, e.Dropped, e.Past,
	)
}

// Is matches ErrNoExams.
func (e *NoExamsError) Is(target error) bool { return target == ErrNoExams }

// Field names the offending request field.
func (e *NoExamsError) Field() string { return "exams" }

// OptionError reports a scheduling knob outside its allowed range.
type OptionError struct {
	Name   string
	Value  int
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Name, e.Value, e.Reason)
}

// Is matches ErrInvalidOption.
func (e *OptionError) Is(target error) bool { return target == ErrInvalidOption }

// Field names the offending request field.
func (e *OptionError) Field() string { return e.Name }
