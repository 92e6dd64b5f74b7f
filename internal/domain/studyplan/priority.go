package studyplan

import (
	"maps"
	"time"

	"github.com/padsala/padsala-api/internal/domain"
)

// runState is the per-run memory of the priority engine. It is treated as a
// value: each day receives the state of the previous day and returns a new
// one, leaving the old maps untouched.
type runState struct {
	studied map[string]int // study days assigned per subject
	cursor  map[string]int // round-robin position per subject
}

func newRunState() runState {
	return runState{studied: map[string]int{}, cursor: map[string]int{}}
}

func (s runState) totalStudied() int {
	total := 0
	for _, n := range s.studied {
		total += n
	}
	return total
}

// assign records a study day for subject, optionally advancing its topic
// cursor, and returns the updated state.
func (s runState) assign(subject string, advanceCursor bool) runState {
	next := runState{studied: maps.Clone(s.studied), cursor: s.cursor}
	next.studied[subject]++
	if advanceCursor {
		next.cursor = maps.Clone(s.cursor)
		next.cursor[subject]++
	}
	return next
}

// choice is the priority engine's decision for one study day.
type choice struct {
	exam         domain.PreparedExam
	topic        string
	masteryFocus bool
	hours        int
}

// score weighs how urgently an exam deserves a study day.
func (p *Params) score(exam domain.PreparedExam, daysLeft, studied int, mastery domain.MasteryMap) float64 {
	return p.proximity(daysLeft) *
		p.difficultyWeight(exam.Difficulty) *
		p.masteryMultiplier(mastery, exam.Name) *
		p.repetitionPenalty(studied)
}

func (p *Params) proximity(daysLeft int) float64 {
	return p.ProximityScale / (float64(daysLeft) + p.ProximityOffset)
}

func (p *Params) difficultyWeight(d domain.Difficulty) float64 {
	return 1 + float64(d)*p.DifficultyStep
}

func (p *Params) masteryMultiplier(mastery domain.MasteryMap, subject string) float64 {
	avg, ok := mastery.Average(subject)
	if !ok {
		avg = p.NeutralMastery
	}
	return 1 + (domain.MaxMasteryScore-avg)/domain.MaxMasteryScore
}

func (p *Params) repetitionPenalty(studied int) float64 {
	return 1 / (float64(studied)*p.RepetitionStep + 1)
}

// selectExam returns the highest scoring exam dated strictly after day.
// exams must be sorted by date; on equal scores the earlier entry wins.
func (p *Params) selectExam(
	exams []domain.PreparedExam,
	day time.Time,
	state runState,
	mastery domain.MasteryMap,
) (domain.PreparedExam, bool) {
	var (
		best      domain.PreparedExam
		bestScore float64
		found     bool
	)
	for _, exam := range exams {
		if !exam.ExamDate.After(day) {
			continue
		}
		s := p.score(exam, daysBetween(day, exam.ExamDate), state.studied[exam.Name], mastery)
		if !found || s > bestScore {
			best, bestScore, found = exam, s, true
		}
	}
	return best, found
}

// chooseTopic picks the weakest mastered topic, else the next chapter in
// round-robin order, else the fallback label. usedCursor reports whether the
// round-robin cursor was consumed.
func (p *Params) chooseTopic(
	exam domain.PreparedExam,
	state runState,
	mastery domain.MasteryMap,
) (topic string, masteryFocus, usedCursor bool) {
	if weakest, _, ok := mastery.Weakest(exam.Name); ok {
		return weakest, true, false
	}
	if len(exam.Chapters) == 0 {
		return p.FallbackTopic, false, false
	}
	idx := state.cursor[exam.Name] % len(exam.Chapters)
	return exam.Chapters[idx], false, true
}

// adjustHours applies the burnout reduction and then the hard-subject bump
// to the nominal daily budget. A budget of zero or less is left alone.
func (p *Params) adjustHours(nominal int, loadFactor float64, difficulty domain.Difficulty) int {
	if nominal <= 0 {
		return nominal
	}
	hours := nominal
	if loadFactor > p.BurnoutThreshold && hours > p.BurnoutFloorHours {
		hours--
	}
	if difficulty == domain.DifficultyHard && hours < p.HardSubjectCapHours {
		hours++
	}
	return hours
}

// decide runs the priority engine for one non-exam day and returns the
// choice together with the state for the following day.
func (p *Params) decide(
	exams []domain.PreparedExam,
	day time.Time,
	dayIndex int,
	nominalHours int,
	state runState,
	mastery domain.MasteryMap,
) (choice, runState, bool) {
	exam, ok := p.selectExam(exams, day, state, mastery)
	if !ok {
		return choice{}, state, false
	}

	topic, masteryFocus, usedCursor := p.chooseTopic(exam, state, mastery)
	loadFactor := float64(state.totalStudied()) / float64(dayIndex+1)

	c := choice{
		exam:         exam,
		topic:        topic,
		masteryFocus: masteryFocus,
		hours:        p.adjustHours(nominalHours, loadFactor, exam.Difficulty),
	}
	return c, state.assign(exam.Name, usedCursor), true
}

// daysBetween counts whole calendar days from a to b. Both must be midnight
// values in the same location.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
