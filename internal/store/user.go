package store

import (
	"context"
	"database/sql"

	"github.com/linkden/linkden/internal/domain"
)

// UserStore defines the interface for user data persistence.
// User creation and profile updates are handled elsewhere; this service
// core only reads users and performs the final delete of the cascade.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist, which is how a
	// second concurrent deletion of the same account is detected and
	// turned into a clean rollback.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
