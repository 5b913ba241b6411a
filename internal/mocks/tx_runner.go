package mocks

import (
	"context"

	"github.com/linkden/linkden/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. By default it
// executes the function with a nil transaction, which the store mocks
// ignore; set RunFn to simulate begin/commit failures.
type MockTxRunner struct {
	RunFn func(ctx context.Context, fn store.TxFn) error

	// RunCount tracks how many transactions were started
	RunCount int
}

// RunInTransaction implements the TxRunner interface
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.RunCount++

	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}
	return fn(ctx, nil)
}
