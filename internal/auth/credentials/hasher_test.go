package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/auth/credentials"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, password := range []string{"hunter2", "x", "коротко", "a long passphrase with spaces"} {
		hash, version, err := credentials.HashPassword(password)
		require.NoError(t, err)
		assert.Equal(t, credentials.HashVersionBcrypt, version)
		assert.NotEqual(t, password, hash)

		assert.NoError(t, credentials.VerifyPassword(hash, password))
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, _, err := credentials.HashPassword("")
	require.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _, err := credentials.HashPassword("hunter2")
	require.NoError(t, err)
	h2, _, err := credentials.HashPassword("hunter2")
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, _, err := credentials.HashPassword("correct")
	require.NoError(t, err)

	assert.Error(t, credentials.VerifyPassword(hash, "wrong"))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		assert.Error(t, credentials.VerifyPassword(hash, "anything"))
	}
}
