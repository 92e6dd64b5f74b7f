package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// PostgresMasteryStore implements store.MasteryStore.
type PostgresMasteryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.MasteryStore = (*PostgresMasteryStore)(nil)

// NewPostgresMasteryStore creates a mastery store.
func NewPostgresMasteryStore(db store.DBTX, logger *slog.Logger) *PostgresMasteryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMasteryStore{
		db:     db,
		logger: logger.With(slog.String("component", "mastery_store")),
	}
}

// WithTx implements store.MasteryStore.
func (s *PostgresMasteryStore) WithTx(tx *sql.Tx) store.MasteryStore {
	return &PostgresMasteryStore{db: tx, logger: s.logger}
}

// GetMap implements store.MasteryStore.
func (s *PostgresMasteryStore) GetMap(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, topic, mastery_score
		FROM topic_mastery
		WHERE user_id = $1
	`, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load mastery",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	mastery := domain.MasteryMap{}
	for rows.Next() {
		var (
			subject, topic string
			score          int
		)
		if err := rows.Scan(&subject, &topic, &score); err != nil {
			return nil, MapError(err)
		}
		mastery.Set(subject, topic, score)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return mastery, nil
}

// GetForUpdate implements store.MasteryStore. A missing row is seeded with
// the neutral score first so there is always a row to lock; concurrent
// callers for the same topic queue on that lock until the holder commits.
func (s *PostgresMasteryStore) GetForUpdate(ctx context.Context, userID uuid.UUID, subject, topic string) (int, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO topic_mastery (user_id, subject, topic, mastery_score, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, subject, topic) DO NOTHING
	`, userID, subject, topic, domain.NeutralMasteryScore)
	if err != nil {
		log.Error("failed to seed mastery row", redact.Attr(err), slog.String("user_id", userID.String()))
		return 0, false, MapError(err)
	}
	seeded, err := result.RowsAffected()
	if err != nil {
		return 0, false, MapError(err)
	}

	var score int
	err = s.db.QueryRowContext(ctx, `
		SELECT mastery_score
		FROM topic_mastery
		WHERE user_id = $1 AND subject = $2 AND topic = $3
		FOR UPDATE
	`, userID, subject, topic).Scan(&score)
	if err != nil {
		log.Error("failed to lock mastery row", redact.Attr(err), slog.String("user_id", userID.String()))
		return 0, false, MapError(err)
	}
	return score, seeded == 0, nil
}

// Upsert implements store.MasteryStore.
func (s *PostgresMasteryStore) Upsert(ctx context.Context, userID uuid.UUID, subject, topic string, score int) error {
	if score < domain.MinMasteryScore || score > domain.MaxMasteryScore {
		return fmt.Errorf("%w: mastery score %d out of range", store.ErrInvalidEntity, score)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO topic_mastery (user_id, subject, topic, mastery_score, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, subject, topic)
		DO UPDATE SET mastery_score = EXCLUDED.mastery_score, updated_at = NOW()
	`, userID, subject, topic, score)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to upsert mastery",
			redact.Attr(err),
			slog.String("user_id", userID.String()),
			slog.String("subject", subject),
			slog.String("topic", topic))
		return store.NewStoreError("mastery", "upsert", "write failed", MapError(err))
	}
	return nil
}
