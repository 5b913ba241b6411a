package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkden/linkden/internal/domain"
)

func validUser() domain.User {
	return domain.User{
		ID:             1,
		Username:       "casey",
		Email:          "casey@example.com",
		HashedPassword: "$2a$10$hashed",
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(u *domain.User)
		wantErr error
	}{
		{
			name:    "valid user",
			modify:  func(u *domain.User) {},
			wantErr: nil,
		},
		{
			name:    "empty username",
			modify:  func(u *domain.User) { u.Username = "  " },
			wantErr: domain.ErrEmptyUsername,
		},
		{
			name:    "empty email",
			modify:  func(u *domain.User) { u.Email = "" },
			wantErr: domain.ErrEmptyEmail,
		},
		{
			name:    "email without at",
			modify:  func(u *domain.User) { u.Email = "casey.example.com" },
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			modify:  func(u *domain.User) { u.Email = "casey@example" },
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "empty password hash",
			modify:  func(u *domain.User) { u.HashedPassword = "" },
			wantErr: domain.ErrEmptyHashedPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.modify(&user)

			err := user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBillingEmailLowerCases(t *testing.T) {
	user := validUser()
	user.Email = "Casey@Example.COM"

	assert.Equal(t, "casey@example.com", user.BillingEmail())
}
