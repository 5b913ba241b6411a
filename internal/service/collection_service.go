package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/platform/filearea"
	"github.com/linkden/linkden/internal/store"
)

// CollectionProposal carries the caller-supplied fields of a collection
// to be created. ParentID is optional; when set, the parent must exist
// and be owned by the creating user.
type CollectionProposal struct {
	Name        string
	Description string
	Color       string
	IsPublic    bool
	ParentID    *int64
}

// CollectionService creates hierarchical collections, enforcing the
// per-owner name uniqueness and parent-ownership invariants.
type CollectionService struct {
	collections store.CollectionStore
	fileArea    filearea.FileArea
	logger      *slog.Logger
}

// NewCollectionService creates a CollectionService.
func NewCollectionService(
	collections store.CollectionStore,
	fileArea filearea.FileArea,
	logger *slog.Logger,
) (*CollectionService, error) {
	if collections == nil {
		return nil, errors.New("collection service: collection store is required")
	}
	if fileArea == nil {
		return nil, errors.New("collection service: file area is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionService{
		collections: collections,
		fileArea:    fileArea,
		logger:      logger.With("component", "collection_service"),
	}, nil
}

// CreateCollection validates and persists a new collection for ownerID.
// Validation gates short-circuit in order: blank name
// (ErrBlankCollectionName), parent existence and ownership
// (ErrParentNotOwned), per-owner name uniqueness
// (ErrCollectionNameTaken). The uniqueness pre-check is advisory; the
// store's unique index is authoritative and a constraint violation on
// insert maps to the same error.
//
// On success the returned collection carries the link-count and member
// projections, and a backing archive folder has been provisioned
// best-effort (provisioning failure is logged, never surfaced).
func (s *CollectionService) CreateCollection(
	ctx context.Context,
	ownerID int64,
	proposal CollectionProposal,
) (*domain.Collection, error) {
	name := strings.TrimSpace(proposal.Name)
	if name == "" {
		return nil, ErrBlankCollectionName
	}

	if proposal.ParentID != nil {
		parent, err := s.collections.GetByID(ctx, *proposal.ParentID)
		if err != nil {
			if errors.Is(err, store.ErrCollectionNotFound) {
				return nil, ErrParentNotOwned
			}
			return nil, fmt.Errorf("failed to look up parent collection: %w", err)
		}
		if parent.OwnerID != ownerID {
			s.logger.Warn("collection creation rejected: parent owned by another user",
				"owner_id", ownerID,
				"parent_id", *proposal.ParentID)
			return nil, ErrParentNotOwned
		}
	}

	taken, err := s.collections.ExistsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check collection name: %w", err)
	}
	if taken {
		return nil, ErrCollectionNameTaken
	}

	collection, err := domain.NewCollection(ownerID, name, proposal.Description, proposal.Color, proposal.ParentID)
	if err != nil {
		return nil, err
	}
	collection.IsPublic = proposal.IsPublic

	created, err := s.collections.Create(ctx, collection)
	if err != nil {
		// Concurrent creator hit the unique index first; same outcome as
		// the advisory pre-check.
		if errors.Is(err, store.ErrCollectionNameExists) {
			return nil, ErrCollectionNameTaken
		}
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	s.logger.Info("collection created",
		"collection_id", created.ID,
		"owner_id", ownerID)

	// Best-effort archive folder provisioning, after the row exists.
	archivePath := filearea.CollectionArchivePath(created.ID)
	if err := s.fileArea.CreateFolder(ctx, archivePath); err != nil {
		s.logger.Warn("failed to provision archive folder",
			"error", err,
			"path", archivePath,
			"collection_id", created.ID)
	}

	return created, nil
}
