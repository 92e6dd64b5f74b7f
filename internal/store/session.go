package store

import (
	"context"
	"database/sql"

	"github.com/padsala/padsala-api/internal/domain"
)

// SessionStore persists logged study sessions.
type SessionStore interface {
	// Create saves a session.
	// Returns validation errors from domain.StudySession if data is invalid.
	// Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, session *domain.StudySession) error

	// WithTx returns a SessionStore that runs on the given transaction.
	WithTx(tx *sql.Tx) SessionStore
}
