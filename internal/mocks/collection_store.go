package mocks

import (
	"context"
	"database/sql"

	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/store"
)

// MockCollectionStore implements store.CollectionStore for testing
type MockCollectionStore struct {
	// Function fields for customizable behavior
	CreateFn                        func(ctx context.Context, collection *domain.Collection) (*domain.Collection, error)
	GetByIDFn                       func(ctx context.Context, id int64) (*domain.Collection, error)
	FindByOwnerFn                   func(ctx context.Context, ownerID int64) ([]*domain.Collection, error)
	ExistsByOwnerAndNameFn          func(ctx context.Context, ownerID int64, name string) (bool, error)
	DeleteByOwnerFn                 func(ctx context.Context, ownerID int64) (int64, error)
	DeleteMembershipsByCollectionFn func(ctx context.Context, collectionID int64) error
	DeleteMembershipsByUserFn       func(ctx context.Context, userID int64) (int64, error)

	// Data for default implementation
	Collections map[int64]*domain.Collection
	Memberships []domain.Membership
	NextID      int64

	// Call tracking
	MembershipDeletes []int64
	MemberDeletes     []int64
	OwnerDeletes      []int64
}

// NewMockCollectionStore creates a new mock store with initialized defaults
func NewMockCollectionStore() *MockCollectionStore {
	return &MockCollectionStore{
		Collections: make(map[int64]*domain.Collection),
		NextID:      1,
	}
}

// Create implements the CollectionStore interface
func (m *MockCollectionStore) Create(ctx context.Context, collection *domain.Collection) (*domain.Collection, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, collection)
	}

	for _, existing := range m.Collections {
		if existing.OwnerID == collection.OwnerID && existing.Name == collection.Name {
			return nil, store.ErrCollectionNameExists
		}
	}

	created := *collection
	created.ID = m.NextID
	m.NextID++
	if created.Members == nil {
		created.Members = []domain.Membership{}
	}
	m.Collections[created.ID] = &created
	return &created, nil
}

// GetByID implements the CollectionStore interface
func (m *MockCollectionStore) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	collection, exists := m.Collections[id]
	if !exists {
		return nil, store.ErrCollectionNotFound
	}
	return collection, nil
}

// FindByOwner implements the CollectionStore interface
func (m *MockCollectionStore) FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Collection, error) {
	if m.FindByOwnerFn != nil {
		return m.FindByOwnerFn(ctx, ownerID)
	}

	owned := []*domain.Collection{}
	for _, collection := range m.Collections {
		if collection.OwnerID == ownerID {
			owned = append(owned, collection)
		}
	}
	return owned, nil
}

// ExistsByOwnerAndName implements the CollectionStore interface
func (m *MockCollectionStore) ExistsByOwnerAndName(ctx context.Context, ownerID int64, name string) (bool, error) {
	if m.ExistsByOwnerAndNameFn != nil {
		return m.ExistsByOwnerAndNameFn(ctx, ownerID, name)
	}

	for _, collection := range m.Collections {
		if collection.OwnerID == ownerID && collection.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// DeleteByOwner implements the CollectionStore interface
func (m *MockCollectionStore) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	m.OwnerDeletes = append(m.OwnerDeletes, ownerID)

	if m.DeleteByOwnerFn != nil {
		return m.DeleteByOwnerFn(ctx, ownerID)
	}

	var removed int64
	for id, collection := range m.Collections {
		if collection.OwnerID == ownerID {
			delete(m.Collections, id)
			removed++
		}
	}
	return removed, nil
}

// DeleteMembershipsByCollection implements the CollectionStore interface
func (m *MockCollectionStore) DeleteMembershipsByCollection(ctx context.Context, collectionID int64) error {
	m.MembershipDeletes = append(m.MembershipDeletes, collectionID)

	if m.DeleteMembershipsByCollectionFn != nil {
		return m.DeleteMembershipsByCollectionFn(ctx, collectionID)
	}

	remaining := m.Memberships[:0]
	for _, membership := range m.Memberships {
		if membership.CollectionID != collectionID {
			remaining = append(remaining, membership)
		}
	}
	m.Memberships = remaining
	return nil
}

// DeleteMembershipsByUser implements the CollectionStore interface
func (m *MockCollectionStore) DeleteMembershipsByUser(ctx context.Context, userID int64) (int64, error) {
	m.MemberDeletes = append(m.MemberDeletes, userID)

	if m.DeleteMembershipsByUserFn != nil {
		return m.DeleteMembershipsByUserFn(ctx, userID)
	}

	var removed int64
	remaining := m.Memberships[:0]
	for _, membership := range m.Memberships {
		if membership.UserID == userID {
			removed++
			continue
		}
		remaining = append(remaining, membership)
	}
	m.Memberships = remaining
	return removed, nil
}

// WithTx implements the CollectionStore interface; the mock ignores the transaction.
func (m *MockCollectionStore) WithTx(tx *sql.Tx) store.CollectionStore {
	return m
}
