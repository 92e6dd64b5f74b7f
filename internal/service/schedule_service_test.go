package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/mocks"
	"github.com/padsala/padsala-api/internal/service"
	"github.com/padsala/padsala-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func threeDayPlan() domain.StudyPlan {
	return domain.StudyPlan{
		Days: []domain.DayPlan{
			{ID: "day-0", Date: "2026-04-14", Status: domain.DayToday},
			{ID: "day-1", Date: "2026-04-15", Status: domain.DayUpcoming},
			{ID: "day-2", Date: "2026-04-16", Status: domain.DayUpcoming, IsExamDay: true},
		},
		Summary: domain.PlanSummary{TotalDays: 3},
	}
}

func TestScheduleService_Save(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	inputs := json.RawMessage(`{"daily_hours":6}`)

	t.Run("valid schedule is stored", func(t *testing.T) {
		schedules := new(mocks.ScheduleStore)
		schedules.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.SavedSchedule) bool {
			return s.UserID == userID && s.Name == "Finals" && len(s.Plan.Days) == 3
		})).Return(nil)

		svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{}, nil)
		require.NoError(t, err)

		saved, err := svc.Save(context.Background(), userID, "  Finals ", threeDayPlan(), inputs)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.Equal(t, "Finals", saved.Name)
		assert.JSONEq(t, string(inputs), string(saved.Inputs))
		schedules.AssertExpectations(t)
	})

	t.Run("invalid schedule never reaches the store", func(t *testing.T) {
		schedules := new(mocks.ScheduleStore)
		svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{}, nil)
		require.NoError(t, err)

		_, err = svc.Save(context.Background(), userID, "", threeDayPlan(), nil)
		assert.ErrorIs(t, err, domain.ErrEmptyScheduleName)

		_, err = svc.Save(context.Background(), userID, "Empty", domain.StudyPlan{}, nil)
		assert.ErrorIs(t, err, domain.ErrEmptySchedulePlan)

		schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		schedules := new(mocks.ScheduleStore)
		schedules.On("Create", mock.Anything, mock.Anything).Return(store.ErrInvalidEntity)

		svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{}, nil)
		require.NoError(t, err)

		_, err = svc.Save(context.Background(), userID, "Finals", threeDayPlan(), nil)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestScheduleService_Get_RefreshesStatus(t *testing.T) {
	t.Parallel()

	userID, id := uuid.New(), uuid.New()
	schedules := new(mocks.ScheduleStore)
	schedules.On("GetByID", mock.Anything, userID, id).Return(&domain.SavedSchedule{
		ID:     id,
		UserID: userID,
		Name:   "Finals",
		Plan:   threeDayPlan(),
	}, nil)

	today := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{Day: today}, nil)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), userID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.DayCompleted, got.Plan.Days[0].Status)
	assert.Equal(t, domain.DayToday, got.Plan.Days[1].Status)
	assert.Equal(t, domain.DayUpcoming, got.Plan.Days[2].Status)
}

func TestScheduleService_NotFound(t *testing.T) {
	t.Parallel()

	userID, id := uuid.New(), uuid.New()
	schedules := new(mocks.ScheduleStore)
	schedules.On("GetByID", mock.Anything, userID, id).Return(nil, store.ErrScheduleNotFound)
	schedules.On("Delete", mock.Anything, userID, id).Return(store.ErrScheduleNotFound)

	svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{}, nil)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), userID, id)
	assert.True(t, store.IsNotFoundError(err))

	err = svc.Delete(context.Background(), userID, id)
	assert.ErrorIs(t, err, store.ErrScheduleNotFound)
}

func TestScheduleService_ListAndDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	list := []*domain.SavedSchedule{{ID: uuid.New(), UserID: userID, Name: "Newest"}, {ID: uuid.New(), UserID: userID, Name: "Oldest"}}

	schedules := new(mocks.ScheduleStore)
	schedules.On("ListByUser", mock.Anything, userID).Return(list, nil).Once()
	schedules.On("ListByUser", mock.Anything, userID).Return(nil, errors.New("db down")).Once()
	schedules.On("Delete", mock.Anything, userID, list[0].ID).Return(nil)

	svc, err := service.NewScheduleService(schedules, &mocks.Scheduler{}, nil)
	require.NoError(t, err)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = svc.List(context.Background(), userID)
	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list", svcErr.Operation)

	require.NoError(t, svc.Delete(context.Background(), userID, list[0].ID))
	schedules.AssertExpectations(t)
}
