package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/api"
	"github.com/linkden/linkden/internal/api/shared"
	"github.com/linkden/linkden/internal/billing"
	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/mocks"
	"github.com/linkden/linkden/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAccountHandler wires an AccountHandler over in-memory mocks with
// one user (id 7, password always accepted) and an optional billing
// capability.
func newAccountHandler(t *testing.T, withBilling bool) (*api.AccountHandler, *mocks.MockBilling) {
	t.Helper()

	users := mocks.NewMockUserStore()
	users.Users[7] = &domain.User{
		ID:             7,
		Username:       "casey",
		Email:          "casey@example.com",
		HashedPassword: "$2a$10$hashed",
	}

	var mockBilling *mocks.MockBilling
	var billingCapability billing.Billing
	if withBilling {
		mockBilling = mocks.NewMockBilling()
		billingCapability = mockBilling
	}

	svc, err := service.NewAccountService(
		users,
		mocks.NewMockCollectionStore(),
		&mocks.MockLinkStore{},
		&mocks.MockTagStore{},
		&mocks.MockWhitelistStore{},
		&mocks.MockTxRunner{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		&mocks.MockFileArea{},
		billingCapability,
		discardLogger(),
	)
	require.NoError(t, err)

	return api.NewAccountHandler(svc, discardLogger()), mockBilling
}

// doDelete performs DELETE /api/account as the given user.
func doDelete(handler *api.AccountHandler, userID *int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/account", bytes.NewBufferString(body))
	if userID != nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, *userID)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	handler.DeleteAccount(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) (json.RawMessage, int) {
	t.Helper()

	var envelope struct {
		Response json.RawMessage `json:"response"`
		Status   int             `json:"status"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Response, envelope.Status
}

func TestDeleteAccountEndpoint(t *testing.T) {
	handler, _ := newAccountHandler(t, false)

	userID := int64(7)
	recorder := doDelete(handler, &userID, `{"password":"hunter2"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	response, status := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusOK, status)

	var message string
	require.NoError(t, json.Unmarshal(response, &message))
	assert.Equal(t, "account deleted", message)
}

func TestDeleteAccountEndpointWithCancellation(t *testing.T) {
	handler, mockBilling := newAccountHandler(t, true)
	mockBilling.Subscriptions["casey@example.com"] = "sub_123"

	userID := int64(7)
	recorder := doDelete(handler, &userID,
		`{"password":"hunter2","cancellation_comment":"moving on","cancellation_feedback":"too_expensive"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	response, _ := decodeEnvelope(t, recorder)

	// The envelope carries the cancellation record instead of the plain
	// message when a subscription was cancelled.
	var cancellation billing.SubscriptionCancellation
	require.NoError(t, json.Unmarshal(response, &cancellation))
	assert.Equal(t, "sub_123", cancellation.SubscriptionID)
	assert.Equal(t, "canceled", cancellation.Status)

	assert.Equal(t, billing.CancellationDetails{
		Comment:  "moving on",
		Feedback: "too_expensive",
	}, mockBilling.LastCancellation)
}

func TestDeleteAccountEndpointMissingSession(t *testing.T) {
	handler, _ := newAccountHandler(t, false)

	recorder := doDelete(handler, nil, `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDeleteAccountEndpointBadBody(t *testing.T) {
	handler, _ := newAccountHandler(t, false)
	userID := int64(7)

	for _, body := range []string{``, `{`, `{"password":"x","bogus":true}`} {
		recorder := doDelete(handler, &userID, body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "body %q", body)
	}
}

func TestDeleteAccountEndpointMissingPassword(t *testing.T) {
	handler, _ := newAccountHandler(t, false)
	userID := int64(7)

	recorder := doDelete(handler, &userID, `{"password":""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteAccountEndpointUnknownUser(t *testing.T) {
	handler, _ := newAccountHandler(t, false)

	userID := int64(999)
	recorder := doDelete(handler, &userID, `{"password":"hunter2"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	response, status := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusNotFound, status)

	var message string
	require.NoError(t, json.Unmarshal(response, &message))
	assert.Equal(t, "User not found", message)
}
