package store

import (
	"context"
	"database/sql"
)

// LinkStore defines the link persistence operations the deletion
// cascade needs. Link CRUD beyond the cascade is out of scope here.
type LinkStore interface {
	// DeleteByCollectionOwner removes every link that belongs to any
	// collection owned by the given user and returns the number of rows
	// removed.
	DeleteByCollectionOwner(ctx context.Context, ownerID int64) (int64, error)

	// WithTx returns a new LinkStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) LinkStore
}
