package service

import "errors"

// Sentinel errors returned by the services. The API layer maps these to
// HTTP status codes; they never cross the transport boundary as raised
// faults.
var (
	// ErrInvalidCredentials is returned when the supplied password does
	// not match the stored credential hash. No mutation has occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrBlankCollectionName is returned when a proposed collection name
	// is empty or all-whitespace after trimming.
	ErrBlankCollectionName = errors.New("collection name cannot be blank")

	// ErrCollectionNameTaken is returned when the owner already has a
	// collection with the proposed name anywhere in their collection set.
	ErrCollectionNameTaken = errors.New("collection name already in use")

	// ErrParentNotOwned is returned when the proposed parent collection
	// does not exist or is owned by a different user.
	ErrParentNotOwned = errors.New("parent collection not owned by user")
)
