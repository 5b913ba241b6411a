package store

import (
	"context"
	"database/sql"

	"github.com/linkden/linkden/internal/domain"
)

// CollectionStore defines the interface for collection data persistence,
// including the membership association rows that hang off collections.
type CollectionStore interface {
	// Create saves a new collection and returns it re-read with the
	// link-count and member projections populated.
	// Returns ErrCollectionNameExists if the owner already has a
	// collection with the same name (unique index on (owner_id, name)).
	Create(ctx context.Context, collection *domain.Collection) (*domain.Collection, error)

	// GetByID retrieves a collection by its unique ID.
	// Returns ErrCollectionNotFound if the collection does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)

	// FindByOwner returns all collections owned by the given user.
	FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Collection, error)

	// ExistsByOwnerAndName reports whether the owner already has a
	// collection with the given (trimmed) name, anywhere in their set.
	ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error)

	// DeleteByOwner removes all collections owned by the given user and
	// returns the number of rows removed.
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)

	// DeleteMembershipsByCollection removes all membership rows that
	// reference the given collection.
	DeleteMembershipsByCollection(ctx context.Context, collectionID int64) error

	// DeleteMembershipsByUser removes all membership rows held by the
	// given user, including memberships in collections owned by other
	// users, and returns the number of rows removed. After an account
	// deletion no membership row may reference the deleted user.
	DeleteMembershipsByUser(ctx context.Context, userID int64) (int64, error)

	// WithTx returns a new CollectionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CollectionStore
}
