package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// SessionInput is one study session as reported by the client.
type SessionInput struct {
	Subject          string
	Topic            string
	DurationMins     int
	FocusScore       int
	DistractionCount int
	IdleSeconds      int
	Abandoned        bool
}

// SessionResult is a logged session and the topic's updated mastery.
type SessionResult struct {
	Session       *domain.StudySession `json:"session"`
	PreviousScore int                  `json:"previous_mastery"`
	MasteryScore  int                  `json:"mastery"`
	FirstForTopic bool                 `json:"first_for_topic"`
}

// SessionService records study sessions and the mastery they earn.
type SessionService interface {
	// LogSession stores the session and updates the topic's mastery in one
	// transaction.
	LogSession(ctx context.Context, userID uuid.UUID, in SessionInput) (*SessionResult, error)

	// Mastery returns all of the user's topic scores.
	Mastery(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error)
}

type sessionServiceImpl struct {
	sessions store.SessionStore
	mastery  store.MasteryStore
	db       *sql.DB
	logger   *slog.Logger
}

// NewSessionService creates a SessionService.
func NewSessionService(
	sessions store.SessionStore,
	mastery store.MasteryStore,
	db *sql.DB,
	logger *slog.Logger,
) (SessionService, error) {
	switch {
	case sessions == nil:
		return nil, missing("session store")
	case mastery == nil:
		return nil, missing("mastery store")
	case db == nil:
		return nil, missing("db")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionServiceImpl{
		sessions: sessions,
		mastery:  mastery,
		db:       db,
		logger:   logger.With(slog.String("component", "session_service")),
	}, nil
}

// LogSession implements SessionService.LogSession.
func (s *sessionServiceImpl) LogSession(
	ctx context.Context,
	userID uuid.UUID,
	in SessionInput,
) (*SessionResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := domain.NewStudySession(userID, in.Subject, in.Topic, in.DurationMins, in.FocusScore)
	if err != nil {
		return nil, err
	}
	session.DistractionCount = in.DistractionCount
	session.IdleSeconds = in.IdleSeconds
	session.Abandoned = in.Abandoned
	if err := session.Validate(); err != nil {
		return nil, err
	}

	result := &SessionResult{Session: session}
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSessions := s.sessions.WithTx(tx)
		txMastery := s.mastery.WithTx(tx)

		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}

		previous, found, err := txMastery.GetForUpdate(ctx, userID, session.Subject, session.Topic)
		if err != nil {
			return err
		}
		if !found {
			previous = domain.NeutralMasteryScore
		}

		next := session.NextMastery(previous)
		if err := txMastery.Upsert(ctx, userID, session.Subject, session.Topic, next); err != nil {
			return err
		}

		result.PreviousScore = previous
		result.MasteryScore = next
		result.FirstForTopic = !found
		return nil
	})
	if err != nil {
		log.Error("failed to log study session",
			redact.Attr(err),
			slog.String("user_id", userID.String()),
			slog.String("subject", session.Subject))
		return nil, NewServiceError("session", "log", "failed to record session", err)
	}

	log.Info("logged study session",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("previous_mastery", result.PreviousScore),
		slog.Int("mastery", result.MasteryScore))
	return result, nil
}

// Mastery implements SessionService.Mastery.
func (s *sessionServiceImpl) Mastery(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error) {
	m, err := s.mastery.GetMap(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load mastery",
			redact.Attr(err),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("session", "mastery", "failed to load mastery", err)
	}
	return m, nil
}
