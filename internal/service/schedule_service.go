package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// ScheduleService manages a user's saved plans.
type ScheduleService interface {
	// Save stores a generated plan under a name.
	Save(
		ctx context.Context,
		userID uuid.UUID,
		name string,
		plan domain.StudyPlan,
		inputs json.RawMessage,
	) (*domain.SavedSchedule, error)

	// List returns the user's schedules, newest first, without plans.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error)

	// Get returns one schedule with day statuses recomputed against today.
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error)

	// Delete removes one schedule.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type scheduleServiceImpl struct {
	schedules store.ScheduleStore
	clock     DayClock
	logger    *slog.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(schedules store.ScheduleStore, clock DayClock, logger *slog.Logger) (ScheduleService, error) {
	if schedules == nil {
		return nil, missing("schedule store")
	}
	if clock == nil {
		return nil, missing("clock")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduleServiceImpl{
		schedules: schedules,
		clock:     clock,
		logger:    logger.With(slog.String("component", "schedule_service")),
	}, nil
}

// Save implements ScheduleService.Save.
func (s *scheduleServiceImpl) Save(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	plan domain.StudyPlan,
	inputs json.RawMessage,
) (*domain.SavedSchedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	schedule, err := domain.NewSavedSchedule(userID, name, plan, inputs)
	if err != nil {
		return nil, err
	}

	if err := s.schedules.Create(ctx, schedule); err != nil {
		log.Error("failed to save schedule",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("schedule", "save", "failed to save schedule", err)
	}

	log.Info("saved schedule",
		slog.String("schedule_id", schedule.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("days", len(plan.Days)))
	return schedule, nil
}

// List implements ScheduleService.List.
func (s *scheduleServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error) {
	schedules, err := s.schedules.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list schedules",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("schedule", "list", "failed to list schedules", err)
	}
	return schedules, nil
}

// Get implements ScheduleService.Get.
func (s *scheduleServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error) {
	schedule, err := s.schedules.GetByID(ctx, userID, id)
	if err != nil {
		if !errors.Is(err, store.ErrScheduleNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to load schedule",
				redact.Attr(err),
				slog.String("schedule_id", id.String()))
		}
		return nil, NewServiceError("schedule", "get", "failed to load schedule", err)
	}

	schedule.Plan.RefreshStatus(s.clock.Today())
	return schedule, nil
}

// Delete implements ScheduleService.Delete.
func (s *scheduleServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.schedules.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrScheduleNotFound) {
			log.Debug("attempted to delete missing schedule", slog.String("schedule_id", id.String()))
		} else {
			log.Error("failed to delete schedule",
				redact.Attr(err),
				slog.String("schedule_id", id.String()))
		}
		return NewServiceError("schedule", "delete", "failed to delete schedule", err)
	}

	log.Info("deleted schedule",
		slog.String("schedule_id", id.String()),
		slog.String("user_id", userID.String()))
	return nil
}
