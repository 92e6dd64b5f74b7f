package domain

import (
	"time"
)

// ISODateLayout is the layout used for Gregorian dates in plans.
const ISODateLayout = "2006-01-02"

// BlockKind classifies a timetable block.
type BlockKind string

// Valid block kinds.
const (
	BlockStudy     BlockKind = "study"
	BlockBreak     BlockKind = "break"
	BlockFullBreak BlockKind = "full-break"
	BlockMeal      BlockKind = "meal"
	BlockBuffer    BlockKind = "buffer"
	BlockExam      BlockKind = "exam"
)

// TimetableBlock is one entry of a day's timetable.
type TimetableBlock struct {
	Time     string    `json:"time"`
	Activity string    `json:"activity"`
	Kind     BlockKind `json:"type"`
	Minutes  int       `json:"minutes"`
}

// TotalMinutes sums the minutes of all blocks.
func TotalMinutes(blocks []TimetableBlock) int {
	total := 0
	for _, b := range blocks {
		total += b.Minutes
	}
	return total
}

// DayStatus places a day relative to today.
type DayStatus string

// Valid day statuses.
const (
	DayCompleted DayStatus = "completed"
	DayToday     DayStatus = "today"
	DayUpcoming  DayStatus = "upcoming"
)

// StatusFor classifies day against today. Both are compared as calendar days.
func StatusFor(day, today time.Time) DayStatus {
	dy, dm, dd := day.Date()
	ty, tm, td := today.Date()
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	switch {
	case d.Before(t):
		return DayCompleted
	case d.Equal(t):
		return DayToday
	default:
		return DayUpcoming
	}
}

// DayPlan is the plan for one calendar day.
type DayPlan struct {
	ID           string           `json:"id"`
	AltDate      string           `json:"bs_date"`
	Date         string           `json:"ad_date"`
	IsExamDay    bool             `json:"is_exam_day"`
	Status       DayStatus        `json:"status"`
	Subject      string           `json:"subject"`
	ExamSubjects []string         `json:"exam_subjects,omitempty"`
	Focus        string           `json:"daily_focus"`
	FocusTopic   string           `json:"focus_topic,omitempty"`
	Difficulty   Difficulty       `json:"difficulty"`
	MasteryFocus bool             `json:"mastery_focus"`
	StudyHours   int              `json:"study_hours"`
	Tasks        []TimetableBlock `json:"tasks"`
}

// PlanSummary aggregates a plan.
type PlanSummary struct {
	TotalDays       int      `json:"total_days"`
	SubjectsCovered []string `json:"subjects_covered"`
	DroppedExams    []string `json:"dropped_exams,omitempty"`
}

// StudyPlan is the scheduler output.
type StudyPlan struct {
	Days    []DayPlan   `json:"days"`
	Summary PlanSummary `json:"summary"`
}

// RefreshStatus recomputes every day's status against today. Days whose
// Gregorian date cannot be parsed keep their stored status.
func (p *StudyPlan) RefreshStatus(today time.Time) {
	for i := range p.Days {
		day, err := time.Parse(ISODateLayout, p.Days[i].Date)
		if err != nil {
			continue
		}
		p.Days[i].Status = StatusFor(day, today)
	}
}

// PlanOptions are the global scheduling knobs.
type PlanOptions struct {
	DailyHours  int    `json:"daily_hours"  mapstructure:"daily_hours"`
	SessionMins int    `json:"session_mins" mapstructure:"session_mins"`
	BreakMins   int    `json:"break_mins"   mapstructure:"break_mins"`
	StartTime   string `json:"start_time"   mapstructure:"start_time"`
}

// Default scheduling knobs.
const (
	DefaultDailyHours  = 8
	DefaultSessionMins = 90
	DefaultBreakMins   = 15
	DefaultStartTime   = "06:00"
)

// DefaultPlanOptions returns the product defaults.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		DailyHours:  DefaultDailyHours,
		SessionMins: DefaultSessionMins,
		BreakMins:   DefaultBreakMins,
		StartTime:   DefaultStartTime,
	}
}
