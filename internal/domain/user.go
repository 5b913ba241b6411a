package domain

import (
	"errors"
	"strings"
	"time"
)

// Common user validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the linkden service.
// The HashedPassword is a bcrypt hash; the plaintext password never
// leaves the credential verifier.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// BillingEmail returns the email address in the form used to correlate
// the user with the external billing provider. Correlation is by
// lower-cased email only; there is no foreign key to the provider.
func (u *User) BillingEmail() string {
	return strings.ToLower(u.Email)
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	// Check for a dot in the domain, not immediately after @ and not at the end
	domainPart := email[atIndex+1:]
	dotIndex := strings.IndexByte(domainPart, '.')
	if dotIndex <= 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}
