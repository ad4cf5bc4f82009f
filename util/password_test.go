package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	password := RandomString(12)

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, password, hashed)

	require.NoError(t, CheckPassword(password, hashed))

	err = CheckPassword(RandomString(12), hashed)
	require.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)

	// salted, so the same password hashes differently
	again, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hashed, again)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(RandomString(73))
	require.Error(t, err)
}
