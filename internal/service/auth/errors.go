// Package auth provides the credential-verification and session-token
// capabilities the HTTP layer depends on. The service core treats both
// as opaque collaborators.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token fails signature or claim validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token is syntactically valid but expired.
	ErrExpiredToken = errors.New("token expired")
)
