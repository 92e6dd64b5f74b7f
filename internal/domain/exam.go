package domain

import (
	"strings"
	"time"
)

// Difficulty grades how hard a subject is for the student.
type Difficulty int

// Valid difficulty values.
const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// DefaultDifficulty is used when an exam does not state one.
const DefaultDifficulty = DifficultyMedium

// IsValid reports whether d is one of the three recognised grades.
func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns a human readable label.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ExamSpec is one exam as submitted by the student. Date is expressed in the
// alternate (Bikram Sambat) calendar as YYYY-MM-DD.
type ExamSpec struct {
	Name       string     `json:"name"                 mapstructure:"name"       validate:"required,max=200"`
	Date       string     `json:"date"                 mapstructure:"date"       validate:"required"`
	Chapters   []string   `json:"chapters,omitempty"   mapstructure:"chapters"`
	Difficulty Difficulty `json:"difficulty,omitempty" mapstructure:"difficulty" validate:"omitempty,min=1,max=3"`
}

// Normalized returns a copy with trimmed name, a defaulted difficulty and a
// chapter list that owns its backing array.
func (e ExamSpec) Normalized() ExamSpec {
	out := ExamSpec{
		Name:       strings.TrimSpace(e.Name),
		Date:       strings.TrimSpace(e.Date),
		Difficulty: e.Difficulty,
	}
	if !out.Difficulty.IsValid() {
		out.Difficulty = DefaultDifficulty
	}
	for _, ch := range e.Chapters {
		if ch = strings.TrimSpace(ch); ch != "" {
			out.Chapters = append(out.Chapters, ch)
		}
	}
	return out
}

// PreparedExam is an ExamSpec whose alternate-calendar date resolved to a
// Gregorian calendar day. ExamDate is always midnight in the planner's zone.
type PreparedExam struct {
	ExamSpec
	ExamDate time.Time
}

// SubjectNames returns the distinct exam names in first-seen order.
func SubjectNames(exams []ExamSpec) []string {
	seen := make(map[string]bool, len(exams))
	names := make([]string, 0, len(exams))
	for _, e := range exams {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		names = append(names, e.Name)
	}
	return names
}
