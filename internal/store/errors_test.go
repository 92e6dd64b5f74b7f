package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapBaseErrors(t *testing.T) {
	t.Parallel()

	notFound := []error{ErrUserNotFound, ErrScheduleNotFound, ErrSubjectNotFound}
	for _, err := range notFound {
		assert.True(t, IsNotFoundError(err), err.Error())
		assert.False(t, IsDuplicateError(err), err.Error())
	}

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.Equal(t, "entity not found: schedule", ErrScheduleNotFound.Error())
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"generic", errors.New("boom"), false},
		{"base", ErrNotFound, true},
		{"wrapped entity", fmt.Errorf("load: %w", ErrScheduleNotFound), true},
		{"store error", NewStoreError("schedule", "get", "lookup failed", ErrScheduleNotFound), true},
		{"duplicate", ErrDuplicate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("session", "create", "insert failed", cause)

	assert.Equal(t, "create operation on session failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("mastery", "upsert", "score out of range", nil)
	assert.Equal(t, "upsert operation on mastery failed: score out of range", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
