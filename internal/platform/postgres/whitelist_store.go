package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/linkden/linkden/internal/platform/logger"
	"github.com/linkden/linkden/internal/store"
)

// WhitelistStore implements the store.WhitelistStore interface
// using a PostgreSQL database as the storage backend.
type WhitelistStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWhitelistStore creates a new PostgreSQL implementation of the
// WhitelistStore interface. If logger is nil, a default logger will be used.
func NewWhitelistStore(db store.DBTX, logger *slog.Logger) *WhitelistStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WhitelistStore{
		db:     db,
		logger: logger.With(slog.String("component", "whitelist_store")),
	}
}

// Ensure WhitelistStore implements store.WhitelistStore interface
var _ store.WhitelistStore = (*WhitelistStore)(nil)

// WithTx implements store.WhitelistStore.WithTx
func (s *WhitelistStore) WithTx(tx *sql.Tx) store.WhitelistStore {
	return &WhitelistStore{
		db:     tx,
		logger: s.logger,
	}
}

// DeleteByUser implements store.WhitelistStore.DeleteByUser
func (s *WhitelistStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM whitelisted_users WHERE user_id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete whitelist entries",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("whitelist entries deleted",
		slog.Int64("user_id", userID),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}
