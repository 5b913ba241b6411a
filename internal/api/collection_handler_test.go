package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/api"
	"github.com/linkden/linkden/internal/api/shared"
	"github.com/linkden/linkden/internal/domain"
	"github.com/linkden/linkden/internal/mocks"
	"github.com/linkden/linkden/internal/service"
)

func newCollectionHandler(t *testing.T) (*api.CollectionHandler, *mocks.MockCollectionStore) {
	t.Helper()

	collections := mocks.NewMockCollectionStore()

	svc, err := service.NewCollectionService(
		collections,
		&mocks.MockFileArea{},
		discardLogger(),
	)
	require.NoError(t, err)

	return api.NewCollectionHandler(svc, discardLogger()), collections
}

// doCreate performs POST /api/collections as the given user.
func doCreate(handler *api.CollectionHandler, userID *int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/collections", bytes.NewBufferString(body))
	if userID != nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, *userID)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	handler.CreateCollection(recorder, req)
	return recorder
}

func TestCreateCollectionEndpoint(t *testing.T) {
	handler, _ := newCollectionHandler(t)

	userID := int64(7)
	recorder := doCreate(handler, &userID,
		`{"name":"reading list","description":"articles","color":"#ff8800","is_public":true}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	response, status := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusOK, status)

	var created domain.Collection
	require.NoError(t, json.Unmarshal(response, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "reading list", created.Name)
	assert.Equal(t, int64(7), created.OwnerID)
	assert.True(t, created.IsPublic)
	assert.Zero(t, created.LinkCount)
	assert.Empty(t, created.Members)
}

func TestCreateCollectionEndpointNested(t *testing.T) {
	handler, collections := newCollectionHandler(t)
	collections.Collections[5] = &domain.Collection{ID: 5, Name: "reading", OwnerID: 7}

	userID := int64(7)
	recorder := doCreate(handler, &userID, `{"name":"long reads","parent_id":5}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	response, _ := decodeEnvelope(t, recorder)
	var created domain.Collection
	require.NoError(t, json.Unmarshal(response, &created))
	require.NotNil(t, created.ParentID)
	assert.Equal(t, int64(5), *created.ParentID)
}

func TestCreateCollectionEndpointForeignParent(t *testing.T) {
	handler, collections := newCollectionHandler(t)
	collections.Collections[5] = &domain.Collection{ID: 5, Name: "reading", OwnerID: 99}

	userID := int64(7)
	recorder := doCreate(handler, &userID, `{"name":"long reads","parent_id":5}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	response, status := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusForbidden, status)

	var message string
	require.NoError(t, json.Unmarshal(response, &message))
	assert.Equal(t, "Parent collection not found or not owned by you", message)
}

func TestCreateCollectionEndpointDuplicateName(t *testing.T) {
	handler, collections := newCollectionHandler(t)
	collections.Collections[5] = &domain.Collection{ID: 5, Name: "reading", OwnerID: 7}

	userID := int64(7)
	recorder := doCreate(handler, &userID, `{"name":"reading"}`)

	// Duplicate names are invalid input, not a conflict.
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateCollectionEndpointBadRequests(t *testing.T) {
	handler, _ := newCollectionHandler(t)
	userID := int64(7)

	cases := map[string]string{
		"empty body":         ``,
		"malformed json":     `{"name":`,
		"missing name":       `{"description":"x"}`,
		"whitespace name":    `{"name":"   "}`,
		"non-numeric parent": `{"name":"x","parent_id":"abc"}`,
		"unknown field":      `{"name":"x","bogus":1}`,
	}

	for label, body := range cases {
		recorder := doCreate(handler, &userID, body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, label)
	}
}

func TestCreateCollectionEndpointValidationMessages(t *testing.T) {
	handler, _ := newCollectionHandler(t)
	userID := int64(7)

	longColor := strings.Repeat("c", 33)
	longDescription := strings.Repeat("d", 2049)

	cases := map[string]struct {
		body string
		want string
	}{
		"missing name": {
			body: `{"description":"x"}`,
			want: "Collection name is required",
		},
		"over-long description": {
			body: `{"name":"reading","description":"` + longDescription + `"}`,
			want: "Description is too long",
		},
		"over-long color": {
			body: `{"name":"reading","color":"` + longColor + `"}`,
			want: "Color is too long",
		},
	}

	for label, tc := range cases {
		recorder := doCreate(handler, &userID, tc.body)
		require.Equal(t, http.StatusBadRequest, recorder.Code, label)

		response, _ := decodeEnvelope(t, recorder)
		var message string
		require.NoError(t, json.Unmarshal(response, &message), label)
		assert.Equal(t, tc.want, message, label)
	}
}

func TestCreateCollectionEndpointMissingSession(t *testing.T) {
	handler, _ := newCollectionHandler(t)

	recorder := doCreate(handler, nil, `{"name":"reading"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
