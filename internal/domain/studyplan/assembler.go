package studyplan

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/calendar"
)

// DefaultMaxHorizonDays caps how many days a single plan may span.
const DefaultMaxHorizonDays = 1096

// DefaultLocation is the operating time zone of the product, UTC+05:45.
var DefaultLocation = time.FixedZone("UTC+05:45", 345*60)

// Planner assembles study plans. It is stateless between calls and safe for
// concurrent use.
type Planner struct {
	conv       calendar.Converter
	clock      Clock
	loc        *time.Location
	params     *Params
	maxHorizon int
	logger     *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithLocation sets the zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(p *Planner) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithParams replaces the default weights.
func WithParams(params *Params) Option {
	return func(p *Planner) {
		if params != nil {
			p.params = params
		}
	}
}

// WithMaxHorizonDays sets the longest plan accepted.
func WithMaxHorizonDays(days int) Option {
	return func(p *Planner) {
		if days > 0 {
			p.maxHorizon = days
		}
	}
}

// WithLogger sets the logger used for dropped exams.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner creates a Planner.
func NewPlanner(conv calendar.Converter, clock Clock, opts ...Option) *Planner {
	if clock == nil {
		clock = SystemClock{}
	}
	p := &Planner{
		conv:       conv,
		clock:      clock,
		loc:        DefaultLocation,
		params:     NewDefaultParams(),
		maxHorizon: DefaultMaxHorizonDays,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Today returns the current calendar day in the planner's zone, as midnight
// UTC so it can be compared with converted exam dates.
func (p *Planner) Today() time.Time {
	y, m, d := p.clock.Now().In(p.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Location returns the planner's operating zone.
func (p *Planner) Location() *time.Location {
	return p.loc
}

// Generate builds the plan from today through the last exam. It either
// returns a complete plan or an error, never both.
func (p *Planner) Generate(
	ctx context.Context,
	exams []domain.ExamSpec,
	opts domain.PlanOptions,
	mastery domain.MasteryMap,
) (*domain.StudyPlan, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	prepared, dropped := p.prepare(ctx, exams)
	today := p.Today()

	if len(prepared) == 0 || prepared[len(prepared)-1].ExamDate.Before(today) {
		past := 0
		for _, e := range prepared {
			if e.ExamDate.Before(today) {
				past++
			}
		}
		return nil, &NoExamsError{Submitted: len(exams), Dropped: len(dropped), Past: past}
	}

	lastDate := prepared[len(prepared)-1].ExamDate
	totalDays := daysBetween(today, lastDate) + 1
	if totalDays > p.maxHorizon {
		return nil, fmt.Errorf("%w: %d days exceeds %d", ErrHorizonTooLong, totalDays, p.maxHorizon)
	}

	examsByDate := groupByDate(prepared)
	state := newRunState()
	days := make([]domain.DayPlan, 0, totalDays)

	for i := 0; i < totalDays; i++ {
		day := today.AddDate(0, 0, i)
		alt, err := p.conv.ToAlt(day)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", day.Format(domain.ISODateLayout), err)
		}

		plan := domain.DayPlan{
			ID:      fmt.Sprintf("day-%d", i),
			AltDate: alt,
			Date:    day.Format(domain.ISODateLayout),
			Status:  domain.StatusFor(day, today),
		}

		if onDay := examsByDate[plan.Date]; len(onDay) > 0 {
			exam := onDay[len(onDay)-1]
			plan.IsExamDay = true
			plan.Subject = exam.Name
			plan.ExamSubjects = examNames(onDay)
			plan.Focus = p.params.ExamDayFocus
			plan.Difficulty = exam.Difficulty
			plan.Tasks = ExamDayTemplate(exam.Name)
			days = append(days, plan)
			continue
		}

		var (
			c  choice
			ok bool
		)
		c, state, ok = p.params.decide(prepared, day, i, opts.DailyHours, state, mastery)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoCandidate, plan.Date)
		}

		tasks, err := BuildDay(DayRequest{
			Subject:     c.exam.Name,
			Focus:       c.topic,
			Hours:       c.hours,
			SessionMins: opts.SessionMins,
			BreakMins:   opts.BreakMins,
			StartTime:   opts.StartTime,
		}, p.params)
		if err != nil {
			return nil, err
		}

		plan.Subject = c.exam.Name
		plan.Focus = p.params.FocusPrefix + c.topic
		plan.FocusTopic = c.topic
		plan.Difficulty = c.exam.Difficulty
		plan.MasteryFocus = c.masteryFocus
		plan.StudyHours = max(c.hours, 0)
		plan.Tasks = tasks
		days = append(days, plan)
	}

	return &domain.StudyPlan{
		Days: days,
		Summary: domain.PlanSummary{
			TotalDays:       totalDays,
			SubjectsCovered: coveredSubjects(exams),
			DroppedExams:    dropped,
		},
	}, nil
}

// ReplanDay rebuilds a single day's timetable, for example after the student
// changes how many hours they can give it. Knobs are checked as in Generate
// and hours above MaxDailyHours is an OptionError.
func (p *Planner) ReplanDay(subject, focus string, hours int, opts domain.PlanOptions) ([]domain.TimetableBlock, error) {
	if hours > MaxDailyHours {
		return nil, &OptionError{Name: "hours", Value: hours, Reason: "cannot exceed 24"}
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return BuildDay(DayRequest{
		Subject:     subject,
		Focus:       focus,
		Hours:       hours,
		SessionMins: opts.SessionMins,
		BreakMins:   opts.BreakMins,
		StartTime:   opts.StartTime,
	}, p.params)
}

// prepare resolves exam dates, dropping the ones that fail, and sorts the
// rest by date. The sort is stable so input order breaks ties.
func (p *Planner) prepare(ctx context.Context, exams []domain.ExamSpec) ([]domain.PreparedExam, []string) {
	prepared := make([]domain.PreparedExam, 0, len(exams))
	var dropped []string

	for _, raw := range exams {
		spec := raw.Normalized()
		date, err := p.conv.ToStandard(spec.Date)
		if err != nil {
			p.logger.WarnContext(ctx, "dropping exam with unresolvable date",
				slog.String("exam", spec.Name),
				slog.String("date", spec.Date),
				slog.Any("error", err))
			dropped = append(dropped, spec.Name)
			continue
		}
		prepared = append(prepared, domain.PreparedExam{ExamSpec: spec, ExamDate: date})
	}

	sort.SliceStable(prepared, func(i, j int) bool {
		return prepared[i].ExamDate.Before(prepared[j].ExamDate)
	})
	return prepared, dropped
}

// MaxDailyHours caps the study hours of a single day.
const MaxDailyHours = 24

func validateOptions(opts domain.PlanOptions) error {
	if opts.DailyHours > MaxDailyHours {
		return &OptionError{Name: "daily_hours", Value: opts.DailyHours, Reason: "cannot exceed 24"}
	}
	if opts.SessionMins <= 0 {
		return &OptionError{Name: "session_mins", Value: opts.SessionMins, Reason: "must be positive"}
	}
	if opts.BreakMins < 0 {
		return &OptionError{Name: "break_mins", Value: opts.BreakMins, Reason: "cannot be negative"}
	}
	if _, err := ParseClock(opts.StartTime); err != nil {
		return err
	}
	return nil
}

// groupByDate indexes exams by ISO date, keeping input order within a day.
func groupByDate(exams []domain.PreparedExam) map[string][]domain.PreparedExam {
	out := make(map[string][]domain.PreparedExam, len(exams))
	for _, e := range exams {
		key := e.ExamDate.Format(domain.ISODateLayout)
		out[key] = append(out[key], e)
	}
	return out
}

func examNames(exams []domain.PreparedExam) []string {
	names := make([]string, len(exams))
	for i, e := range exams {
		names[i] = e.Name
	}
	return names
}

// coveredSubjects lists the distinct names from the submitted exams,
// including any whose date failed to resolve.
func coveredSubjects(exams []domain.ExamSpec) []string {
	specs := make([]domain.ExamSpec, len(exams))
	for i, e := range exams {
		specs[i] = e.Normalized()
	}
	names := domain.SubjectNames(specs)
	sort.Strings(names)
	return names
}
