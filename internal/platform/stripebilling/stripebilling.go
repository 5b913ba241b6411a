// Package stripebilling implements the billing capability against the
// Stripe API.
package stripebilling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/linkden/linkden/internal/billing"
)

// StripeBilling implements billing.Billing using the Stripe client API.
type StripeBilling struct {
	api    *client.API
	logger *slog.Logger
}

// New creates a StripeBilling bound to the given secret key.
// If logger is nil, a default logger will be used.
func New(secretKey string, logger *slog.Logger) *StripeBilling {
	if logger == nil {
		logger = slog.Default()
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeBilling{
		api:    api,
		logger: logger.With(slog.String("component", "stripe_billing")),
	}
}

// Ensure StripeBilling implements billing.Billing
var _ billing.Billing = (*StripeBilling)(nil)

// FindSubscriptionByEmail implements billing.Billing.FindSubscriptionByEmail
// It lists customers by email with their subscriptions expanded and
// returns the first subscription found. Empty customer lists and
// customers without subscriptions are reported as found == false, never
// dereferenced.
func (b *StripeBilling) FindSubscriptionByEmail(ctx context.Context, email string) (string, bool, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddExpand("data.subscriptions")

	iter := b.api.Customers.List(params)
	for iter.Next() {
		customer := iter.Customer()
		if customer.Subscriptions == nil || len(customer.Subscriptions.Data) == 0 {
			continue
		}
		subscriptionID := customer.Subscriptions.Data[0].ID
		b.logger.Debug("subscription found for customer",
			slog.String("customer_id", customer.ID),
			slog.String("subscription_id", subscriptionID))
		return subscriptionID, true, nil
	}

	if err := iter.Err(); err != nil {
		return "", false, fmt.Errorf("failed to list customers: %w", err)
	}

	b.logger.Debug("no subscription found for email")
	return "", false, nil
}

// CancelSubscription implements billing.Billing.CancelSubscription
func (b *StripeBilling) CancelSubscription(
	ctx context.Context,
	subscriptionID string,
	details billing.CancellationDetails,
) (*billing.SubscriptionCancellation, error) {
	params := &stripe.SubscriptionCancelParams{
		CancellationDetails: &stripe.SubscriptionCancelCancellationDetailsParams{},
	}
	params.Context = ctx
	if details.Comment != "" {
		params.CancellationDetails.Comment = stripe.String(details.Comment)
	}
	if details.Feedback != "" {
		params.CancellationDetails.Feedback = stripe.String(details.Feedback)
	}

	sub, err := b.api.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription %s: %w", subscriptionID, err)
	}

	cancellation := &billing.SubscriptionCancellation{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		CanceledAt:     time.Unix(sub.CanceledAt, 0).UTC(),
	}
	if sub.Customer != nil {
		cancellation.CustomerID = sub.Customer.ID
	}

	b.logger.Info("subscription cancelled",
		slog.String("subscription_id", sub.ID),
		slog.String("status", string(sub.Status)))
	return cancellation, nil
}
