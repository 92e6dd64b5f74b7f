package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/padsala/padsala-api/internal/api"
	"github.com/padsala/padsala-api/internal/api/shared"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/calendar"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/generation"
	"github.com/padsala/padsala-api/internal/service"
	"github.com/padsala/padsala-api/internal/service/auth"
	"github.com/padsala/padsala-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantField  string
	}{
		{
			name:       "bad start time",
			err:        &studyplan.TimeFormatError{Value: "6am"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    `invalid start time "6am": expected HH:MM`,
			wantField:  "start_time",
		},
		{
			name:       "nothing to schedule",
			err:        &studyplan.NoExamsError{Submitted: 2, Dropped: 1, Past: 1},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "no schedulable exams: 2 submitted, 1 with invalid dates, 1 already past",
			wantField:  "exams",
		},
		{
			name:       "knob out of range",
			err:        &studyplan.OptionError{Name: "session_mins", Value: 0, Reason: "must be positive"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid session_mins 0: must be positive",
			wantField:  "session_mins",
		},
		{
			name:       "horizon too long",
			err:        fmt.Errorf("%w: 2000 days exceeds 1096", studyplan.ErrHorizonTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "planning horizon too long",
		},
		{
			name:       "date outside calendar table",
			err:        &calendar.DateFormatError{Value: "2100-01-01", Reason: "year outside supported range"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    `invalid date "2100-01-01": year outside supported range`,
			wantField:  "date",
		},
		{
			name:       "planner consistency failure",
			err:        fmt.Errorf("%w: 2026-04-15", studyplan.ErrNoCandidate),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
		{
			name:       "empty subject",
			err:        service.ErrEmptySubject,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "subject cannot be empty",
		},
		{
			name:       "entity validation",
			err:        domain.NewValidationError("inputs", "must be valid JSON", domain.ErrInvalidFormat),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "inputs must be valid JSON",
			wantField:  "inputs",
		},
		{
			name:       "domain sentinel",
			err:        domain.ErrEmptyScheduleName,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "schedule name cannot be empty",
		},
		{
			name:       "schedule missing behind a service error",
			err:        service.NewServiceError("schedule", "get", "failed to get schedule", store.ErrScheduleNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Schedule not found",
		},
		{
			name:       "duplicate email",
			err:        fmt.Errorf("create user: %w", store.ErrEmailExists),
			wantStatus: http.StatusConflict,
			wantMsg:    "Email already exists",
		},
		{
			name:       "expired refresh token",
			err:        auth.ErrExpiredRefreshToken,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid refresh token",
		},
		{
			name:       "anonymous caller",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Authentication required",
		},
		{
			name:       "topic generation down",
			err:        generation.ErrGenerationFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Topic generation is unavailable",
		},
		{
			name:       "internal failure",
			err:        errors.New("dial tcp 10.0.0.7:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, api.MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMsg, api.GetSafeErrorMessage(tt.err))
			assert.Equal(t, tt.wantField, api.ErrorField(tt.err))
		})
	}
}

func TestErrorMapping_ValidatorErrors(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(&api.GenerateScheduleRequest{
		Exams: []domain.ExamSpec{{Name: "Physics"}},
	})
	require.Error(t, err)

	assert.Equal(t, http.StatusBadRequest, api.MapErrorToStatusCode(err))
	assert.Equal(t, "exams[0].date", api.ErrorField(err))
	assert.Equal(t, "Invalid exams[0].date: required field", api.GetSafeErrorMessage(err))

	err = shared.ValidateRequest(&api.LogSessionRequest{Topic: "Optics", DurationMins: 30})
	require.Error(t, err)
	assert.Equal(t, "subject", api.ErrorField(err))
	assert.Equal(t, "Invalid subject: required field", api.SanitizeValidationError(err))
}

func TestGetSafeErrorMessage_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("plain")))
}
