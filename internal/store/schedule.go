package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
)

// ScheduleStore persists saved study plans. Every lookup is scoped to the
// owning user; a schedule owned by someone else is reported as
// ErrScheduleNotFound.
type ScheduleStore interface {
	// Create saves a new schedule.
	// Returns validation errors from domain.SavedSchedule if data is invalid.
	// Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, schedule *domain.SavedSchedule) error

	// GetByID retrieves one of the user's schedules.
	// Returns ErrScheduleNotFound if it does not exist or is not the user's.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error)

	// ListByUser returns the user's schedules, newest first. Plans are not
	// loaded; only ID, name, inputs and creation time are set.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error)

	// Delete removes one of the user's schedules.
	// Returns ErrScheduleNotFound if it does not exist or is not the user's.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a ScheduleStore that runs on the given transaction.
	WithTx(tx *sql.Tx) ScheduleStore
}
