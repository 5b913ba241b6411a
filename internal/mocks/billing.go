package mocks

import (
	"context"

	"github.com/linkden/linkden/internal/billing"
)

// MockBilling implements billing.Billing for testing
type MockBilling struct {
	FindSubscriptionByEmailFn func(ctx context.Context, email string) (string, bool, error)
	CancelSubscriptionFn      func(ctx context.Context, subscriptionID string, details billing.CancellationDetails) (*billing.SubscriptionCancellation, error)

	// Data for default implementation: map of email to subscription id
	Subscriptions map[string]string

	// Call tracking
	LookedUpEmails   []string
	CancelledIDs     []string
	LastCancellation billing.CancellationDetails
}

// NewMockBilling creates a new mock billing capability with initialized defaults
func NewMockBilling() *MockBilling {
	return &MockBilling{
		Subscriptions: make(map[string]string),
	}
}

// FindSubscriptionByEmail implements the Billing interface
func (m *MockBilling) FindSubscriptionByEmail(ctx context.Context, email string) (string, bool, error) {
	m.LookedUpEmails = append(m.LookedUpEmails, email)

	if m.FindSubscriptionByEmailFn != nil {
		return m.FindSubscriptionByEmailFn(ctx, email)
	}

	subscriptionID, found := m.Subscriptions[email]
	return subscriptionID, found, nil
}

// CancelSubscription implements the Billing interface
func (m *MockBilling) CancelSubscription(
	ctx context.Context,
	subscriptionID string,
	details billing.CancellationDetails,
) (*billing.SubscriptionCancellation, error) {
	m.CancelledIDs = append(m.CancelledIDs, subscriptionID)
	m.LastCancellation = details

	if m.CancelSubscriptionFn != nil {
		return m.CancelSubscriptionFn(ctx, subscriptionID, details)
	}

	return &billing.SubscriptionCancellation{
		SubscriptionID: subscriptionID,
		Status:         "canceled",
	}, nil
}
