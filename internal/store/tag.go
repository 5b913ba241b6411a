package store

import (
	"context"
	"database/sql"
)

// TagStore defines the tag persistence operations the deletion cascade needs.
type TagStore interface {
	// DeleteByOwner removes all tags owned by the given user and returns
	// the number of rows removed.
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)

	// WithTx returns a new TagStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TagStore
}
