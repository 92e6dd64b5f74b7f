package studyplan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/padsala/padsala-api/internal/domain"
)

// DayRequest describes one day to expand into a timetable.
type DayRequest struct {
	Subject     string
	Focus       string
	Hours       int // study budget; <= 0 yields a rest day
	SessionMins int
	BreakMins   int
	StartTime   string // HH:MM
	ExamDay     bool
}

// BuildDay expands a day request into its ordered timetable blocks.
func BuildDay(req DayRequest, params *Params) ([]domain.TimetableBlock, error) {
	if params == nil {
		params = NewDefaultParams()
	}

	if req.ExamDay {
		return ExamDayTemplate(req.Subject), nil
	}

	if req.Hours <= 0 {
		return []domain.TimetableBlock{RestDayBlock(params)}, nil
	}

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	if req.SessionMins <= 0 {
		return nil, &OptionError{Name: "session_mins", Value: req.SessionMins, Reason: "must be positive"}
	}
	if req.BreakMins < 0 {
		return nil, &OptionError{Name: "break_mins", Value: req.BreakMins, Reason: "cannot be negative"}
	}

	t := timeline{now: start}
	remaining := req.Hours * 60
	sinceReset := 0
	sessions := 0
	served := make(map[int]bool, len(params.Meals))

	for remaining > 0 {
		if meal, ok := mealDue(params.Meals, t.hour(), served); ok {
			served[meal.Hour] = true
			t.emit(meal.Activity, domain.BlockMeal, meal.Minutes)
			continue
		}

		length := min(req.SessionMins, remaining)
		phase := params.StudyPhases[sessions%len(params.StudyPhases)]
		t.emit(phase+": "+req.Focus, domain.BlockStudy, length)
		remaining -= length
		sinceReset += length
		sessions++

		if remaining <= 0 {
			break
		}

		if sinceReset >= params.FullResetAfterMins {
			t.emit(params.ResetActivity, domain.BlockFullBreak, params.FullResetMins)
			sinceReset = 0
		} else if req.BreakMins > 0 {
			t.emit(params.BreakActivity, domain.BlockBreak, req.BreakMins)
		}
	}

	t.emit(params.BufferActivity, domain.BlockBuffer, params.BufferMins)
	return t.blocks, nil
}

// ExamDayTemplate returns the fixed exam-day routine for subject.
func ExamDayTemplate(subject string) []domain.TimetableBlock {
	blocks := make([]domain.TimetableBlock, len(examDayTemplate))
	copy(blocks, examDayTemplate)
	blocks[0].Activity = fmt.Sprintf(blocks[0].Activity, subject)
	return blocks
}

// RestDayBlock is the single block of a day without a study budget.
func RestDayBlock(params *Params) domain.TimetableBlock {
	if params == nil {
		params = NewDefaultParams()
	}
	return domain.TimetableBlock{
		Time:     restDayLabel,
		Activity: params.RestActivity,
		Kind:     domain.BlockBreak,
		Minutes:  minutesPerDay,
	}
}

// ParseClock parses an HH:MM (or H:MM) time of day into minutes after
// midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, &TimeFormatError{Value: s}
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 || !isDigits(hh) {
		return 0, &TimeFormatError{Value: s}
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || !isDigits(mm) {
		return 0, &TimeFormatError{Value: s}
	}
	return h*60 + m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func mealDue(meals []Meal, hour int, served map[int]bool) (Meal, bool) {
	for _, m := range meals {
		if m.Hour == hour && !served[m.Hour] {
			return m, true
		}
	}
	return Meal{}, false
}

// timeline is the virtual clock a timetable is laid out on.
type timeline struct {
	now    int // minutes since the day's midnight, may pass 24h
	blocks []domain.TimetableBlock
}

func (t *timeline) hour() int {
	return (t.now / 60) % 24
}

func (t *timeline) emit(activity string, kind domain.BlockKind, minutes int) {
	end := t.now + minutes
	t.blocks = append(t.blocks, domain.TimetableBlock{
		Time:     formatClock(t.now) + " - " + formatClock(end),
		Activity: activity,
		Kind:     kind,
		Minutes:  minutes,
	})
	t.now = end
}

func formatClock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
