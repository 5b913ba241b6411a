package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/linkden/linkden/internal/platform/logger"
	"github.com/linkden/linkden/internal/store"
)

// TagStore implements the store.TagStore interface
// using a PostgreSQL database as the storage backend.
type TagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTagStore creates a new PostgreSQL implementation of the TagStore
// interface. If logger is nil, a default logger will be used.
func NewTagStore(db store.DBTX, logger *slog.Logger) *TagStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TagStore{
		db:     db,
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure TagStore implements store.TagStore interface
var _ store.TagStore = (*TagStore)(nil)

// WithTx implements store.TagStore.WithTx
func (s *TagStore) WithTx(tx *sql.Tx) store.TagStore {
	return &TagStore{
		db:     tx,
		logger: s.logger,
	}
}

// DeleteByOwner implements store.TagStore.DeleteByOwner
func (s *TagStore) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tags WHERE owner_id = $1`

	result, err := s.db.ExecContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to delete tags by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("tags deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}
