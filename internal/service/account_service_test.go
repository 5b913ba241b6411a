package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/billing"
	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/mocks"
	"github.com/linkden/linkden/internal/service"
	"github.com/linkden/linkden/internal/store"
)

// accountFixture bundles the mocks behind an AccountService under test.
type accountFixture struct {
	users       *mocks.MockUserStore
	collections *mocks.MockCollectionStore
	links       *mocks.MockLinkStore
	tags        *mocks.MockTagStore
	whitelist   *mocks.MockWhitelistStore
	txRunner    *mocks.MockTxRunner
	verifier    *mocks.MockPasswordVerifier
	fileArea    *mocks.MockFileArea
	billing     *mocks.MockBilling
	service     *service.AccountService
}

// newAccountFixture wires an AccountService over fresh mocks. The
// billing capability is attached only when withBilling is true, matching
// the two deployment shapes.
func newAccountFixture(t *testing.T, withBilling bool) *accountFixture {
	t.Helper()

	f := &accountFixture{
		users:       mocks.NewMockUserStore(),
		collections: mocks.NewMockCollectionStore(),
		links:       &mocks.MockLinkStore{},
		tags:        &mocks.MockTagStore{},
		whitelist:   &mocks.MockWhitelistStore{},
		txRunner:    &mocks.MockTxRunner{},
		verifier:    &mocks.MockPasswordVerifier{ShouldSucceed: true},
		fileArea:    &mocks.MockFileArea{},
	}

	var billingCapability billing.Billing
	if withBilling {
		f.billing = mocks.NewMockBilling()
		billingCapability = f.billing
	}

	svc, err := service.NewAccountService(
		f.users,
		f.collections,
		f.links,
		f.tags,
		f.whitelist,
		f.txRunner,
		f.verifier,
		f.fileArea,
		billingCapability,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)

	f.service = svc
	return f
}

func (f *accountFixture) seedUser(id int64, email string) *domain.User {
	user := &domain.User{
		ID:             id,
		Username:       "casey",
		Email:          email,
		HashedPassword: "$2a$10$hashed",
	}
	f.users.Users[id] = user
	return user
}

func (f *accountFixture) seedCollection(id, ownerID int64, name string) {
	f.collections.Collections[id] = &domain.Collection{
		ID:      id,
		Name:    name,
		OwnerID: ownerID,
	}
	if id >= f.collections.NextID {
		f.collections.NextID = id + 1
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")
	f.seedCollection(11, 7, "reading")
	f.seedCollection(12, 7, "recipes")
	f.seedCollection(13, 99, "someone elses")
	f.collections.Memberships = []domain.Membership{
		{UserID: 99, CollectionID: 11}, // stranger invited into 7's collection
		{UserID: 7, CollectionID: 13},  // 7 invited into the stranger's collection
		{UserID: 99, CollectionID: 13}, // unrelated, must survive
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, "account deleted", outcome.Message)
	assert.Nil(t, outcome.Cancellation)

	// Every dependent table was swept inside one transaction.
	assert.Equal(t, 1, f.txRunner.RunCount)
	assert.Equal(t, []int64{7}, f.whitelist.UserDeletes)
	assert.Equal(t, []int64{7}, f.links.OwnerDeletes)
	assert.Equal(t, []int64{7}, f.tags.OwnerDeletes)
	assert.Equal(t, []int64{7}, f.collections.MemberDeletes)
	assert.ElementsMatch(t, []int64{11, 12}, f.collections.MembershipDeletes)
	assert.Equal(t, []int64{7}, f.collections.OwnerDeletes)
	assert.Equal(t, []int64{7}, f.users.DeleteCalls)

	// The user and their collections are gone; the stranger's survives.
	assert.NotContains(t, f.users.Users, int64(7))
	assert.NotContains(t, f.collections.Collections, int64(11))
	assert.NotContains(t, f.collections.Collections, int64(12))
	assert.Contains(t, f.collections.Collections, int64(13))

	// No membership row references the deleted user or their collections;
	// the stranger's own membership survives.
	assert.Equal(t,
		[]domain.Membership{{UserID: 99, CollectionID: 13}},
		f.collections.Memberships)

	// Folder cleanup ran after commit: one archive per owned collection
	// plus the avatar folder.
	assert.ElementsMatch(t,
		[]string{"archives/11", "archives/12", "avatars/7"},
		f.fileArea.RemovedFolders)
}

func TestDeleteAccountRemovesForeignMemberships(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")
	f.seedCollection(13, 99, "someone elses")

	// 7 owns nothing, only holds a membership in the stranger's
	// collection. That row would block the user delete on its foreign
	// key if the cascade left it behind.
	f.collections.Memberships = []domain.Membership{
		{UserID: 7, CollectionID: 13},
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, []int64{7}, f.collections.MemberDeletes)
	assert.Empty(t, f.collections.Memberships)
	assert.NotContains(t, f.users.Users, int64(7))

	// The stranger's collection itself is untouched.
	assert.Contains(t, f.collections.Collections, int64(13))
	assert.Empty(t, f.collections.MembershipDeletes)
}

func TestDeleteAccountRejectsWrongPassword(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")
	f.verifier.ShouldSucceed = false

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "wrong", billing.CancellationDetails{})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Credential mismatch must leave everything untouched.
	assert.Equal(t, 0, f.txRunner.RunCount)
	assert.Empty(t, f.users.DeleteCalls)
	assert.Empty(t, f.fileArea.RemovedFolders)
	assert.Contains(t, f.users.Users, int64(7))
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	f := newAccountFixture(t, false)

	outcome, err := f.service.DeleteAccount(context.Background(), 42, "hunter2", billing.CancellationDetails{})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// The password is never checked for a missing user.
	assert.Equal(t, 0, f.verifier.CompareCallCount)
	assert.Equal(t, 0, f.txRunner.RunCount)
}

func TestDeleteAccountConcurrentDeletion(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")

	// Simulate a concurrent deletion that wins between the existence
	// check and the final user delete.
	f.users.DeleteFn = func(ctx context.Context, id int64) error {
		return store.ErrUserNotFound
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// The lost race rolls the batch back, so no folder cleanup runs.
	assert.Empty(t, f.fileArea.RemovedFolders)
}

func TestDeleteAccountCascadeFailureWrapsTransactionError(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")
	f.seedCollection(11, 7, "reading")

	f.tags.DeleteByOwnerFn = func(ctx context.Context, ownerID int64) (int64, error) {
		return 0, errors.New("connection reset")
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, store.ErrTransactionFailed)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)

	// Failed transaction leaves the file area alone.
	assert.Empty(t, f.fileArea.RemovedFolders)
}

func TestDeleteAccountCancelsSubscription(t *testing.T) {
	f := newAccountFixture(t, true)
	f.seedUser(7, "Casey@Example.COM")
	f.billing.Subscriptions["casey@example.com"] = "sub_123"

	details := billing.CancellationDetails{
		Comment:  "moving on",
		Feedback: "too_expensive",
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", details)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	// The lookup normalizes the email to lower case.
	require.Len(t, f.billing.LookedUpEmails, 1)
	assert.Equal(t, "casey@example.com", f.billing.LookedUpEmails[0])

	assert.Equal(t, []string{"sub_123"}, f.billing.CancelledIDs)
	assert.Equal(t, details, f.billing.LastCancellation)

	require.NotNil(t, outcome.Cancellation)
	assert.Equal(t, "sub_123", outcome.Cancellation.SubscriptionID)
	assert.Equal(t, "canceled", outcome.Cancellation.Status)
}

func TestDeleteAccountWithoutSubscription(t *testing.T) {
	f := newAccountFixture(t, true)
	f.seedUser(7, "casey@example.com")

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)

	// No subscription collapses to the generic success, never an error.
	assert.Equal(t, "account deleted", outcome.Message)
	assert.Nil(t, outcome.Cancellation)
	assert.Empty(t, f.billing.CancelledIDs)
}

func TestDeleteAccountSurvivesBillingLookupFailure(t *testing.T) {
	f := newAccountFixture(t, true)
	f.seedUser(7, "casey@example.com")

	f.billing.FindSubscriptionByEmailFn = func(ctx context.Context, email string) (string, bool, error) {
		return "", false, errors.New("stripe: 500")
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Nil(t, outcome.Cancellation)

	// The relational deletion already committed.
	assert.NotContains(t, f.users.Users, int64(7))
}

func TestDeleteAccountSurvivesCancellationFailure(t *testing.T) {
	f := newAccountFixture(t, true)
	f.seedUser(7, "casey@example.com")
	f.billing.Subscriptions["casey@example.com"] = "sub_123"

	f.billing.CancelSubscriptionFn = func(ctx context.Context, subscriptionID string, details billing.CancellationDetails) (*billing.SubscriptionCancellation, error) {
		return nil, errors.New("stripe: subscription already canceled")
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "account deleted", outcome.Message)
	assert.Nil(t, outcome.Cancellation)
}

func TestDeleteAccountSurvivesFolderRemovalFailure(t *testing.T) {
	f := newAccountFixture(t, false)
	f.seedUser(7, "casey@example.com")
	f.seedCollection(11, 7, "reading")

	f.fileArea.RemoveFolderFn = func(ctx context.Context, logicalPath string) error {
		return errors.New("permission denied")
	}

	outcome, err := f.service.DeleteAccount(context.Background(), 7, "hunter2", billing.CancellationDetails{})
	require.NoError(t, err)
	require.NotNil(t, outcome)

	// Every removal is still attempted despite the failures.
	assert.ElementsMatch(t,
		[]string{"archives/11", "avatars/7"},
		f.fileArea.RemovedFolders)
}
