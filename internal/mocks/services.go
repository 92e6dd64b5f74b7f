package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// Scheduler is a testify mock of studyplan.Scheduler. Today returns Day.
type Scheduler struct {
	mock.Mock
	Day time.Time
}

var _ studyplan.Scheduler = (*Scheduler)(nil)

func (m *Scheduler) Generate(
	ctx context.Context,
	exams []domain.ExamSpec,
	opts domain.PlanOptions,
	mastery domain.MasteryMap,
) (*domain.StudyPlan, error) {
	args := m.Called(ctx, exams, opts, mastery)
	if plan, ok := args.Get(0).(*domain.StudyPlan); ok {
		return plan, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Scheduler) ReplanDay(subject, focus string, hours int, opts domain.PlanOptions) ([]domain.TimetableBlock, error) {
	args := m.Called(subject, focus, hours, opts)
	if blocks, ok := args.Get(0).([]domain.TimetableBlock); ok {
		return blocks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Scheduler) Today() time.Time {
	return m.Day
}

// PlanService is a testify mock of service.PlanService.
type PlanService struct {
	mock.Mock
}

var _ service.PlanService = (*PlanService)(nil)

func (m *PlanService) GenerateSchedule(
	ctx context.Context,
	req service.GenerateScheduleRequest,
) (*domain.StudyPlan, error) {
	args := m.Called(ctx, req)
	if plan, ok := args.Get(0).(*domain.StudyPlan); ok {
		return plan, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PlanService) ReplanDay(ctx context.Context, req service.ReplanDayRequest) ([]domain.TimetableBlock, error) {
	args := m.Called(ctx, req)
	if blocks, ok := args.Get(0).([]domain.TimetableBlock); ok {
		return blocks, args.Error(1)
	}
	return nil, args.Error(1)
}

// SyllabusService is a testify mock of service.SyllabusService.
type SyllabusService struct {
	mock.Mock
}

var _ service.SyllabusService = (*SyllabusService)(nil)

func (m *SyllabusService) Metadata(ctx context.Context) (*service.Metadata, error) {
	args := m.Called(ctx)
	if md, ok := args.Get(0).(*service.Metadata); ok {
		return md, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SyllabusService) Chapters(ctx context.Context, path domain.SyllabusPath) (*service.ChapterList, error) {
	args := m.Called(ctx, path)
	if list, ok := args.Get(0).(*service.ChapterList); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ScheduleService is a testify mock of service.ScheduleService.
type ScheduleService struct {
	mock.Mock
}

var _ service.ScheduleService = (*ScheduleService)(nil)

func (m *ScheduleService) Save(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	plan domain.StudyPlan,
	inputs json.RawMessage,
) (*domain.SavedSchedule, error) {
	args := m.Called(ctx, userID, name, plan, inputs)
	if s, ok := args.Get(0).(*domain.SavedSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*domain.SavedSchedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error) {
	args := m.Called(ctx, userID, id)
	if s, ok := args.Get(0).(*domain.SavedSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// SessionService is a testify mock of service.SessionService.
type SessionService struct {
	mock.Mock
}

var _ service.SessionService = (*SessionService)(nil)

func (m *SessionService) LogSession(
	ctx context.Context,
	userID uuid.UUID,
	in service.SessionInput,
) (*service.SessionResult, error) {
	args := m.Called(ctx, userID, in)
	if res, ok := args.Get(0).(*service.SessionResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionService) Mastery(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error) {
	args := m.Called(ctx, userID)
	if mm, ok := args.Get(0).(domain.MasteryMap); ok {
		return mm, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserService is a testify mock of service.UserService.
type UserService struct {
	mock.Mock
}

var _ service.UserService = (*UserService)(nil)

func (m *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
