package mocks

import (
	"context"
	"database/sql"

	"github.com/linkden/linkden/internal/store"
)

// MockLinkStore implements store.LinkStore for testing
type MockLinkStore struct {
	DeleteByCollectionOwnerFn func(ctx context.Context, ownerID int64) (int64, error)

	// Call tracking
	OwnerDeletes []int64
}

// DeleteByCollectionOwner implements the LinkStore interface
func (m *MockLinkStore) DeleteByCollectionOwner(ctx context.Context, ownerID int64) (int64, error) {
	m.OwnerDeletes = append(m.OwnerDeletes, ownerID)

	if m.DeleteByCollectionOwnerFn != nil {
		return m.DeleteByCollectionOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

// WithTx implements the LinkStore interface; the mock ignores the transaction.
func (m *MockLinkStore) WithTx(tx *sql.Tx) store.LinkStore {
	return m
}

// MockTagStore implements store.TagStore for testing
type MockTagStore struct {
	DeleteByOwnerFn func(ctx context.Context, ownerID int64) (int64, error)

	// Call tracking
	OwnerDeletes []int64
}

// DeleteByOwner implements the TagStore interface
func (m *MockTagStore) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	m.OwnerDeletes = append(m.OwnerDeletes, ownerID)

	if m.DeleteByOwnerFn != nil {
		return m.DeleteByOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

// WithTx implements the TagStore interface; the mock ignores the transaction.
func (m *MockTagStore) WithTx(tx *sql.Tx) store.TagStore {
	return m
}

// MockWhitelistStore implements store.WhitelistStore for testing
type MockWhitelistStore struct {
	DeleteByUserFn func(ctx context.Context, userID int64) (int64, error)

	// Call tracking
	UserDeletes []int64
}

// DeleteByUser implements the WhitelistStore interface
func (m *MockWhitelistStore) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	m.UserDeletes = append(m.UserDeletes, userID)

	if m.DeleteByUserFn != nil {
		return m.DeleteByUserFn(ctx, userID)
	}
	return 0, nil
}

// WithTx implements the WhitelistStore interface; the mock ignores the transaction.
func (m *MockWhitelistStore) WithTx(tx *sql.Tx) store.WhitelistStore {
	return m
}
