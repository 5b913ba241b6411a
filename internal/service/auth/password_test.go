package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/linkden/linkden/internal/service/auth"
)

func TestBcryptVerifierCompare(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := auth.NewBcryptVerifier()

	assert.NoError(t, verifier.Compare(string(hash), "hunter2"))
	assert.Error(t, verifier.Compare(string(hash), "hunter3"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "hunter2"))
}
