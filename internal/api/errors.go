package api

import (
	"errors"
	"net/http"

	"github.com/linkden/linkden/internal/api/shared"
	"github.com/linkden/linkden/internal/service"
	"github.com/linkden/linkden/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
//
// Note the duplicate-name case maps to 400, not 409: the API contract
// reports name conflicts as invalid input.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrParentNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrCollectionNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrBlankCollectionName),
		errors.Is(err, service.ErrCollectionNameTaken),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error (includes store.ErrTransactionFailed)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, service.ErrParentNotOwned):
		return "Parent collection not found or not owned by you"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCollectionNotFound):
		return "Collection not found"

	case errors.Is(err, service.ErrBlankCollectionName):
		return "Collection name is required"

	case errors.Is(err, service.ErrCollectionNameTaken):
		return "You already have a collection with that name"

	case errors.Is(err, store.ErrTransactionFailed):
		return "Failed to delete account"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error envelope for err, using the central
// status-code mapping and sanitized message. An explicit userMessage
// overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	message := userMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithError(w, r, status, message)
}
