package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/platform/logger"
	"github.com/linkden/linkden/internal/store"
)

// CollectionStore implements the store.CollectionStore interface
// using a PostgreSQL database as the storage backend.
type CollectionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCollectionStore creates a new PostgreSQL implementation of the
// CollectionStore interface. If logger is nil, a default logger will be used.
func NewCollectionStore(db store.DBTX, logger *slog.Logger) *CollectionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionStore{
		db:     db,
		logger: logger.With(slog.String("component", "collection_store")),
	}
}

// Ensure CollectionStore implements store.CollectionStore interface
var _ store.CollectionStore = (*CollectionStore)(nil)

// WithTx implements store.CollectionStore.WithTx
func (s *CollectionStore) WithTx(tx *sql.Tx) store.CollectionStore {
	return &CollectionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CollectionStore.Create
// The pre-insert name check in the service is advisory only; the unique
// index on (owner_id, name) is the authoritative guard, surfaced here as
// store.ErrCollectionNameExists.
func (s *CollectionStore) Create(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := collection.Validate(); err != nil {
		log.Warn("collection validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", collection.OwnerID))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO collections (name, description, color, is_public, parent_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		collection.Name,
		collection.Description,
		collection.Color,
		collection.IsPublic,
		collection.ParentID,
		collection.OwnerID,
		collection.CreatedAt,
		collection.UpdatedAt,
	).Scan(&collection.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate collection name",
				slog.Int64("owner_id", collection.OwnerID),
				slog.String("name", collection.Name))
			return nil, store.ErrCollectionNameExists
		}
		log.Error("failed to create collection",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", collection.OwnerID))
		return nil, MapError(err)
	}

	log.Info("collection created",
		slog.Int64("collection_id", collection.ID),
		slog.Int64("owner_id", collection.OwnerID))

	// Fetch back with the link-count and member projections.
	return s.GetByID(ctx, collection.ID)
}

// GetByID implements store.CollectionStore.GetByID
// Returns store.ErrCollectionNotFound if the collection does not exist.
// The returned collection carries the link-count and member projections.
func (s *CollectionStore) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.name, c.description, c.color, c.is_public, c.parent_id, c.owner_id,
		       c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM links l WHERE l.collection_id = c.id) AS link_count
		FROM collections c
		WHERE c.id = $1
	`

	var collection domain.Collection
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&collection.ID,
		&collection.Name,
		&collection.Description,
		&collection.Color,
		&collection.IsPublic,
		&collection.ParentID,
		&collection.OwnerID,
		&collection.CreatedAt,
		&collection.UpdatedAt,
		&collection.LinkCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("collection not found", slog.Int64("collection_id", id))
			return nil, store.ErrCollectionNotFound
		}
		log.Error("failed to get collection by ID",
			slog.String("error", err.Error()),
			slog.Int64("collection_id", id))
		return nil, MapError(err)
	}

	members, err := s.findMembers(ctx, id)
	if err != nil {
		log.Error("failed to load collection members",
			slog.String("error", err.Error()),
			slog.Int64("collection_id", id))
		return nil, err
	}
	collection.Members = members

	return &collection, nil
}

// findMembers loads the membership rows of a collection together with
// the display fields of each member.
func (s *CollectionStore) findMembers(ctx context.Context, collectionID int64) ([]domain.Membership, error) {
	query := `
		SELECT uc.user_id, uc.collection_id, uc.can_create, uc.can_update, uc.can_delete,
		       u.username, u.name
		FROM users_and_collections uc
		JOIN users u ON u.id = uc.user_id
		WHERE uc.collection_id = $1
		ORDER BY uc.user_id
	`

	rows, err := s.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	members := []domain.Membership{}
	for rows.Next() {
		var m domain.Membership
		err := rows.Scan(
			&m.UserID,
			&m.CollectionID,
			&m.CanCreate,
			&m.CanUpdate,
			&m.CanDelete,
			&m.User.Username,
			&m.User.Name,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// FindByOwner implements store.CollectionStore.FindByOwner
// Returns an empty slice if the user owns no collections.
func (s *CollectionStore) FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Collection, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, color, is_public, parent_id, owner_id, created_at, updated_at
		FROM collections
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query collections by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	collections := []*domain.Collection{}
	for rows.Next() {
		var c domain.Collection
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.Color,
			&c.IsPublic,
			&c.ParentID,
			&c.OwnerID,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan collection row",
				slog.String("error", err.Error()))
			return nil, err
		}
		collections = append(collections, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return collections, nil
}

// ExistsByOwnerAndName implements store.CollectionStore.ExistsByOwnerAndName
func (s *CollectionStore) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM collections WHERE owner_id = $1 AND name = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, ownerID, name).Scan(&exists); err != nil {
		log.Error("failed to check collection name",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return false, MapError(err)
	}

	return exists, nil
}

// DeleteByOwner implements store.CollectionStore.DeleteByOwner
// Parent and child collections of the same owner are removed by the same
// statement, so the self-referencing parent_id constraint never fires.
func (s *CollectionStore) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM collections WHERE owner_id = $1`

	result, err := s.db.ExecContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to delete collections by owner",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("collections deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}

// DeleteMembershipsByUser implements store.CollectionStore.DeleteMembershipsByUser
// It sweeps the member-side rows too: memberships the user holds in
// collections owned by others would otherwise block the final user
// delete on the user_id foreign key.
func (s *CollectionStore) DeleteMembershipsByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users_and_collections WHERE user_id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete memberships by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("user memberships deleted",
		slog.Int64("user_id", userID),
		slog.Int64("count", rowsAffected))
	return rowsAffected, nil
}

// DeleteMembershipsByCollection implements store.CollectionStore.DeleteMembershipsByCollection
func (s *CollectionStore) DeleteMembershipsByCollection(ctx context.Context, collectionID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users_and_collections WHERE collection_id = $1`

	if _, err := s.db.ExecContext(ctx, query, collectionID); err != nil {
		log.Error("failed to delete collection memberships",
			slog.String("error", err.Error()),
			slog.Int64("collection_id", collectionID))
		return MapError(err)
	}

	return nil
}
