package store

import (
	"context"
	"database/sql"
)

// WhitelistStore defines persistence for standing permission records
// keyed to a user.
type WhitelistStore interface {
	// DeleteByUser removes all whitelist rows for the given user and
	// returns the number of rows removed.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)

	// WithTx returns a new WhitelistStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) WhitelistStore
}
