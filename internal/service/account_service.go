package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/linkden/linkden/internal/billing"
	"github.com/linkden/linkden/internal/platform/filearea"
	"github.com/linkden/linkden/internal/service/auth"
	"github.com/linkden/linkden/internal/store"
)

// DeletionOutcome is the result of a completed account deletion.
// Cancellation is non-nil only when a billing subscription was found
// and cancelled as part of the deletion.
type DeletionOutcome struct {
	Message      string                            `json:"message"`
	Cancellation *billing.SubscriptionCancellation `json:"cancellation,omitempty"`
}

// AccountService performs irreversible account deletion: one atomic
// transaction removes the user and every row that exists only in
// relation to it, then file-area cleanup and billing cancellation run
// as fault-isolated side effects.
type AccountService struct {
	users       store.UserStore
	collections store.CollectionStore
	links       store.LinkStore
	tags        store.TagStore
	whitelist   store.WhitelistStore
	txRunner    store.TxRunner
	verifier    auth.PasswordVerifier
	fileArea    filearea.FileArea
	billing     billing.Billing // optional; nil when not configured
	logger      *slog.Logger
}

// NewAccountService creates an AccountService. The billing capability
// is optional and may be nil; every other dependency is required.
func NewAccountService(
	users store.UserStore,
	collections store.CollectionStore,
	links store.LinkStore,
	tags store.TagStore,
	whitelist store.WhitelistStore,
	txRunner store.TxRunner,
	verifier auth.PasswordVerifier,
	fileArea filearea.FileArea,
	billingCapability billing.Billing,
	logger *slog.Logger,
) (*AccountService, error) {
	if users == nil || collections == nil || links == nil || tags == nil || whitelist == nil {
		return nil, errors.New("account service: all stores are required")
	}
	if txRunner == nil {
		return nil, errors.New("account service: txRunner is required")
	}
	if verifier == nil {
		return nil, errors.New("account service: password verifier is required")
	}
	if fileArea == nil {
		return nil, errors.New("account service: file area is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		users:       users,
		collections: collections,
		links:       links,
		tags:        tags,
		whitelist:   whitelist,
		txRunner:    txRunner,
		verifier:    verifier,
		fileArea:    fileArea,
		billing:     billingCapability,
		logger:      logger.With("component", "account_service"),
	}, nil
}

// DeleteAccount deletes the user identified by userID together with all
// data it transitively owns.
//
// Returns store.ErrUserNotFound if the user does not exist (including
// the case where a concurrent deletion won the race inside the
// transaction), ErrInvalidCredentials if the password does not match,
// and a store.ErrTransactionFailed-wrapped error if the cascade could
// not commit. On success the relational state is fully cleaned up;
// folder removal and billing cancellation are best-effort and never
// fail the deletion.
func (s *AccountService) DeleteAccount(
	ctx context.Context,
	userID int64,
	password string,
	details billing.CancellationDetails,
) (*DeletionOutcome, error) {
	// 1. The user must exist. No side effects on absence.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// 2. Credential gate. No mutation before this point or on mismatch.
	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Warn("account deletion rejected: credential mismatch",
			"user_id", userID)
		return nil, ErrInvalidCredentials
	}

	// 3. One atomic transaction in dependency order. Folder removals are
	// only recorded as deferred descriptors here; they execute after
	// commit so a rollback leaves the file area untouched.
	var deferredRemovals []string

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.whitelist.WithTx(tx).DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete whitelist entries: %w", err)
		}

		txCollections := s.collections.WithTx(tx)

		// Memberships the user holds in other owners' collections must go
		// too; the user_id foreign key would otherwise block the final
		// user delete.
		if _, err := txCollections.DeleteMembershipsByUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete memberships held by user: %w", err)
		}

		if _, err := s.links.WithTx(tx).DeleteByCollectionOwner(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete links: %w", err)
		}

		if _, err := s.tags.WithTx(tx).DeleteByOwner(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete tags: %w", err)
		}

		owned, err := txCollections.FindByOwner(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to enumerate collections: %w", err)
		}

		for _, collection := range owned {
			if err := txCollections.DeleteMembershipsByCollection(ctx, collection.ID); err != nil {
				return fmt.Errorf("failed to delete memberships of collection %d: %w", collection.ID, err)
			}
			deferredRemovals = append(deferredRemovals, filearea.CollectionArchivePath(collection.ID))
		}

		if _, err := txCollections.DeleteByOwner(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete collections: %w", err)
		}

		deferredRemovals = append(deferredRemovals, filearea.UserAvatarPath(userID))

		// Deleting the user row last keeps every earlier statement
		// covered by the existence check: a concurrent deletion that
		// already removed the user surfaces here as ErrUserNotFound and
		// rolls the whole batch back.
		if err := s.users.WithTx(tx).Delete(ctx, userID); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Info("account already deleted by concurrent request",
				"user_id", userID)
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("account deletion transaction failed",
			"error", err,
			"user_id", userID)
		if errors.Is(err, store.ErrTransactionFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", store.ErrTransactionFailed, err)
	}

	s.logger.Info("account deleted",
		"user_id", userID,
		"folders_scheduled", len(deferredRemovals))

	// 4. Post-commit side effects, each independently fault-isolated.
	s.removeFolders(ctx, deferredRemovals)

	// 5. Billing cancellation, only when configured for the deployment.
	if cancellation := s.cancelSubscription(ctx, user.BillingEmail(), details); cancellation != nil {
		return &DeletionOutcome{
			Message:      "account deleted",
			Cancellation: cancellation,
		}, nil
	}

	return &DeletionOutcome{Message: "account deleted"}, nil
}

// removeFolders removes the deferred folder descriptors collected during
// the transaction. Failures are logged and never propagated; a committed
// deletion may leave orphaned folders behind.
func (s *AccountService) removeFolders(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := s.fileArea.RemoveFolder(ctx, path); err != nil {
			s.logger.Warn("failed to remove storage folder",
				"error", err,
				"path", path)
		}
	}
}

// cancelSubscription looks up and cancels the user's billing
// subscription. It returns nil when billing is not configured, when no
// customer or subscription exists for the email, or when the provider
// call fails; the deletion outcome is the same generic success in all
// of those cases.
func (s *AccountService) cancelSubscription(
	ctx context.Context,
	email string,
	details billing.CancellationDetails,
) *billing.SubscriptionCancellation {
	if s.billing == nil {
		return nil
	}

	subscriptionID, found, err := s.billing.FindSubscriptionByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("billing subscription lookup failed",
			"error", err)
		return nil
	}
	if !found {
		s.logger.Debug("no billing subscription to cancel")
		return nil
	}

	cancellation, err := s.billing.CancelSubscription(ctx, subscriptionID, details)
	if err != nil {
		s.logger.Warn("billing subscription cancellation failed",
			"error", err,
			"subscription_id", subscriptionID)
		return nil
	}

	return cancellation
}
