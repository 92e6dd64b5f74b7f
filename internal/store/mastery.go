package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
)

// MasteryStore persists per-topic mastery scores.
type MasteryStore interface {
	// GetMap returns all of the user's scores. A user with no history gets
	// an empty, non-nil map.
	GetMap(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error)

	// GetForUpdate returns one topic's score and holds a row lock on it
	// until the surrounding transaction ends, so read-modify-write updates
	// of the same topic serialize. A topic with no history is created at
	// domain.NeutralMasteryScore and reported with found false. Call it on
	// a store bound with WithTx.
	GetForUpdate(ctx context.Context, userID uuid.UUID, subject, topic string) (score int, found bool, err error)

	// Upsert stores a topic's score, replacing any previous one.
	// Returns ErrInvalidEntity if the score is out of range or the user
	// does not exist.
	Upsert(ctx context.Context, userID uuid.UUID, subject, topic string, score int) error

	// WithTx returns a MasteryStore that runs on the given transaction.
	WithTx(tx *sql.Tx) MasteryStore
}
