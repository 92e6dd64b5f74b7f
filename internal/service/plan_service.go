package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// DefaultReplanFocus is used when a replan request names no focus.
const DefaultReplanFocus = "Revision"

// OptionOverrides carries the scheduling knobs a request actually set.
// Nil fields take the configured defaults.
type OptionOverrides struct {
	DailyHours  *int
	SessionMins *int
	BreakMins   *int
	StartTime   *string
}

// Apply fills the unset knobs from defaults.
func (o OptionOverrides) Apply(defaults domain.PlanOptions) domain.PlanOptions {
	opts := defaults
	if o.DailyHours != nil {
		opts.DailyHours = *o.DailyHours
	}
	if o.SessionMins != nil {
		opts.SessionMins = *o.SessionMins
	}
	if o.BreakMins != nil {
		opts.BreakMins = *o.BreakMins
	}
	if o.StartTime != nil {
		opts.StartTime = strings.TrimSpace(*o.StartTime)
	}
	return opts
}

// GenerateScheduleRequest is a full-plan request.
type GenerateScheduleRequest struct {
	// UserID is uuid.Nil for anonymous callers.
	UserID uuid.UUID
	// Program locates the student's semester for chapter backfill. Its
	// Subject is ignored.
	Program domain.SyllabusPath
	Exams   []domain.ExamSpec
	// Mastery overrides the stored scores when non-empty.
	Mastery domain.MasteryMap
	Options OptionOverrides
}

// ReplanDayRequest rebuilds a single day.
type ReplanDayRequest struct {
	Subject string
	Focus   string
	Hours   *int
	Options OptionOverrides
}

// PlanService produces study plans.
type PlanService interface {
	// GenerateSchedule builds a plan from today through the last exam.
	GenerateSchedule(ctx context.Context, req GenerateScheduleRequest) (*domain.StudyPlan, error)

	// ReplanDay rebuilds one day's timetable.
	ReplanDay(ctx context.Context, req ReplanDayRequest) ([]domain.TimetableBlock, error)
}

type planServiceImpl struct {
	scheduler studyplan.Scheduler
	syllabus  SyllabusService
	mastery   store.MasteryStore
	defaults  domain.PlanOptions
	logger    *slog.Logger
}

// NewPlanService creates a PlanService. defaults supply every knob a
// request leaves out.
func NewPlanService(
	scheduler studyplan.Scheduler,
	syllabus SyllabusService,
	mastery store.MasteryStore,
	defaults domain.PlanOptions,
	logger *slog.Logger,
) (PlanService, error) {
	switch {
	case scheduler == nil:
		return nil, missing("scheduler")
	case syllabus == nil:
		return nil, missing("syllabus service")
	case mastery == nil:
		return nil, missing("mastery store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &planServiceImpl{
		scheduler: scheduler,
		syllabus:  syllabus,
		mastery:   mastery,
		defaults:  defaults,
		logger:    logger.With(slog.String("component", "plan_service")),
	}, nil
}

// GenerateSchedule implements PlanService.GenerateSchedule.
func (s *planServiceImpl) GenerateSchedule(
	ctx context.Context,
	req GenerateScheduleRequest,
) (*domain.StudyPlan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Mastery.Validate(); err != nil {
		return nil, err
	}

	exams := s.backfillChapters(ctx, req.Program, req.Exams)
	mastery := s.resolveMastery(ctx, req.UserID, req.Mastery)
	opts := req.Options.Apply(s.defaults)

	plan, err := s.scheduler.Generate(ctx, exams, opts, mastery)
	if err != nil {
		log.Debug("plan generation rejected",
			redact.Attr(err),
			slog.Int("exam_count", len(exams)))
		return nil, err
	}

	log.Info("generated study plan",
		slog.Int("total_days", plan.Summary.TotalDays),
		slog.Int("exam_count", len(exams)),
		slog.Int("dropped_exams", len(plan.Summary.DroppedExams)))
	return plan, nil
}

// backfillChapters returns a copy of exams where every exam without
// chapters got them from the syllabus service. Lookup failures leave the
// exam as it was; the planner then uses its fallback topic.
func (s *planServiceImpl) backfillChapters(
	ctx context.Context,
	program domain.SyllabusPath,
	exams []domain.ExamSpec,
) []domain.ExamSpec {
	log := logger.FromContextOrDefault(ctx, s.logger)

	out := make([]domain.ExamSpec, len(exams))
	copy(out, exams)
	for i := range out {
		if len(out[i].Chapters) > 0 || strings.TrimSpace(out[i].Name) == "" {
			continue
		}
		list, err := s.syllabus.Chapters(ctx, program.WithSubject(out[i].Name))
		if err != nil {
			log.Warn("chapter backfill failed",
				redact.Attr(err),
				slog.String("exam", out[i].Name))
			continue
		}
		out[i].Chapters = list.Chapters
	}
	return out
}

// resolveMastery prefers the request's map, then the caller's stored
// scores. A store failure degrades to planning without mastery.
func (s *planServiceImpl) resolveMastery(
	ctx context.Context,
	userID uuid.UUID,
	supplied domain.MasteryMap,
) domain.MasteryMap {
	if len(supplied) > 0 || userID == uuid.Nil {
		return supplied
	}

	stored, err := s.mastery.GetMap(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to load mastery",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil
	}
	return stored
}

// ReplanDay implements PlanService.ReplanDay.
func (s *planServiceImpl) ReplanDay(ctx context.Context, req ReplanDayRequest) ([]domain.TimetableBlock, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}
	focus := strings.TrimSpace(req.Focus)
	if focus == "" {
		focus = DefaultReplanFocus
	}

	opts := req.Options.Apply(s.defaults)
	hours := opts.DailyHours
	if req.Hours != nil {
		hours = *req.Hours
	}

	blocks, err := s.scheduler.ReplanDay(subject, focus, hours, opts)
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("replanned day",
		slog.String("subject", subject),
		slog.Int("hours", hours),
		slog.Int("blocks", len(blocks)))
	return blocks, nil
}
