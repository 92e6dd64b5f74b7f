package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// PostgresScheduleStore implements store.ScheduleStore. Plans and wizard
// inputs are stored as JSONB.
type PostgresScheduleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ScheduleStore = (*PostgresScheduleStore)(nil)

// NewPostgresScheduleStore creates a schedule store.
func NewPostgresScheduleStore(db store.DBTX, logger *slog.Logger) *PostgresScheduleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresScheduleStore{
		db:     db,
		logger: logger.With(slog.String("component", "schedule_store")),
	}
}

// WithTx implements store.ScheduleStore.
func (s *PostgresScheduleStore) WithTx(tx *sql.Tx) store.ScheduleStore {
	return &PostgresScheduleStore{db: tx, logger: s.logger}
}

// Create implements store.ScheduleStore.
func (s *PostgresScheduleStore) Create(ctx context.Context, schedule *domain.SavedSchedule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := schedule.Validate(); err != nil {
		log.Warn("schedule validation failed during create",
			redact.Attr(err),
			slog.String("schedule_id", schedule.ID.String()))
		return err
	}

	plan, err := json.Marshal(schedule.Plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_schedules (id, user_id, name, plan, inputs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, schedule.ID, schedule.UserID, schedule.Name, string(plan), nullableJSON(schedule.Inputs), schedule.CreatedAt)
	if err != nil {
		log.Error("failed to create schedule",
			redact.Attr(err),
			slog.String("schedule_id", schedule.ID.String()),
			slog.String("user_id", schedule.UserID.String()))
		return MapError(err)
	}

	log.Info("schedule saved",
		slog.String("schedule_id", schedule.ID.String()),
		slog.String("user_id", schedule.UserID.String()),
		slog.Int("days", len(schedule.Plan.Days)))
	return nil
}

// GetByID implements store.ScheduleStore.
func (s *PostgresScheduleStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		schedule domain.SavedSchedule
		plan     []byte
		inputs   []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, plan, inputs, created_at
		FROM saved_schedules
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Name,
		&plan,
		&inputs,
		&schedule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("schedule not found",
				slog.String("schedule_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrScheduleNotFound
		}
		log.Error("failed to get schedule",
			redact.Attr(err),
			slog.String("schedule_id", id.String()))
		return nil, MapError(err)
	}

	if err := json.Unmarshal(plan, &schedule.Plan); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan %s: %w", id, err)
	}
	if len(inputs) > 0 {
		schedule.Inputs = json.RawMessage(inputs)
	}
	return &schedule, nil
}

// ListByUser implements store.ScheduleStore.
func (s *PostgresScheduleStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, inputs, created_at
		FROM saved_schedules
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		log.Error("failed to list schedules",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	schedules := make([]*domain.SavedSchedule, 0)
	for rows.Next() {
		var (
			schedule domain.SavedSchedule
			inputs   []byte
		)
		if err := rows.Scan(&schedule.ID, &schedule.UserID, &schedule.Name, &inputs, &schedule.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		if len(inputs) > 0 {
			schedule.Inputs = json.RawMessage(inputs)
		}
		schedules = append(schedules, &schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return schedules, nil
}

// Delete implements store.ScheduleStore.
func (s *PostgresScheduleStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_schedules WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "schedule"); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrScheduleNotFound
		}
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("schedule deleted",
		slog.String("schedule_id", id.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// nullableJSON maps empty JSON to SQL NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
