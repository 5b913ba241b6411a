package mocks

import (
	"context"
	"database/sql"

	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Users map[int64]*domain.User

	// Call tracking
	DeleteCalls []int64
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[int64]*domain.User),
	}
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls = append(m.DeleteCalls, id)

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface; the mock ignores the transaction.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
