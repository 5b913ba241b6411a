// Package billing defines the external billing capability consumed by
// the account service. The provider owns the subscription records;
// correlation with local users is by lower-cased email only and is
// best-effort. The capability is optional per deployment: an account
// service constructed without it skips the billing step entirely.
package billing

import (
	"context"
	"time"
)

// CancellationDetails carries the caller-supplied metadata attached to a
// subscription cancellation.
type CancellationDetails struct {
	Comment  string
	Feedback string
}

// SubscriptionCancellation is the provider's record of a completed
// cancellation, returned to the caller of the account deletion.
type SubscriptionCancellation struct {
	SubscriptionID string    `json:"subscription_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	CanceledAt     time.Time `json:"canceled_at"`
}

// Billing is the external billing provider capability.
type Billing interface {
	// FindSubscriptionByEmail looks up the provider's customer records by
	// email and returns the id of the first active subscription found.
	// Both "no customer for this email" and "customer with no
	// subscriptions" return found == false and no error: the caller
	// treats them the same as billing not being configured.
	FindSubscriptionByEmail(ctx context.Context, email string) (subscriptionID string, found bool, err error)

	// CancelSubscription cancels the subscription with the given id,
	// attaching the supplied cancellation details.
	CancelSubscription(ctx context.Context, subscriptionID string, details CancellationDetails) (*SubscriptionCancellation, error)
}
