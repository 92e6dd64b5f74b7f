package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
)

// UserStore persists student accounts.
//
// Create and Update validate the user and hash a non-empty plaintext
// Password into HashedPassword; users returned by the store never carry a
// plaintext password.
type UserStore interface {
	// Create inserts user. A taken email yields ErrEmailExists.
	Create(ctx context.Context, user *domain.User) error

	// GetByID yields ErrUserNotFound for an unknown id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail looks up a normalized email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update rewrites email and password hash. The caller passes the full
	// user, including HashedPassword when the password is unchanged.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes the account; saved schedules, sessions and mastery
	// rows cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) UserStore
}
