package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/linkden/linkden/internal/platform/logger"
	"github.com/linkden/linkden/internal/store"
)

// LinkStore implements the store.LinkStore interface
// using a PostgreSQL database as the storage backend.
type LinkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLinkStore creates a new PostgreSQL implementation of the LinkStore
// interface. If logger is nil, a default logger will be used.
func NewLinkStore(db store.DBTX, logger *slog.Logger) *LinkStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LinkStore{
		db:     db,
		logger: logger.With(slog.String("component", "link_store")),
	}
}

// Ensure LinkStore implements store.LinkStore interface
var _ store.LinkStore = (*LinkStore)(nil)

// WithTx implements store.LinkStore.WithTx
func (s *LinkStore) WithTx(tx *sql.Tx) store.LinkStore {
	return &LinkStore{
		db:     tx,
		logger: s.logger,
	}
}

// DeleteByCollectionOwner implements store.LinkStore.DeleteByCollectionOwner
// It removes every link reachable through any collection of the owner in
// a single statement so no orphaned link is ever observable.
func (s *LinkStore) DeleteByCollectionOwner(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM links
		WHERE collection_id IN (SELECT id FROM collections WHERE owner_id = $1)
	`

	result, err := s.db.ExecContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to delete links by collection owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("links deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}
