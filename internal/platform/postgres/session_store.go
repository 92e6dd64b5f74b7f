package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// PostgresSessionStore implements store.SessionStore.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SessionStore = (*PostgresSessionStore)(nil)

// NewPostgresSessionStore creates a session store.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// WithTx implements store.SessionStore.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{db: tx, logger: s.logger}
}

// Create implements store.SessionStore.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create", redact.Attr(err))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO study_sessions (
			id, user_id, subject, topic, duration_mins, focus_score,
			distraction_count, idle_seconds, abandoned, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		session.ID,
		session.UserID,
		session.Subject,
		session.Topic,
		session.DurationMins,
		session.FocusScore,
		session.DistractionCount,
		session.IdleSeconds,
		session.Abandoned,
		session.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create session",
			redact.Attr(err),
			slog.String("user_id", session.UserID.String()))
		return store.NewStoreError("session", "create", "insert failed", MapError(err))
	}

	log.Debug("session logged",
		slog.String("session_id", session.ID.String()),
		slog.String("subject", session.Subject),
		slog.String("topic", session.Topic))
	return nil
}
