package db

import (
	"context"
	"testing"

	"github.com/VxidDev/eduDuck/util"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T, store Store) User {
	t.Helper()

	arg := CreateUserParams{
		Username:       "user_" + util.RandomString(10),
		HashedPassword: util.RandomString(60),
	}

	user, err := store.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.NotZero(t, user.CreatedAt)

	return user
}

func TestCreateUser(t *testing.T) {
	store := requireStore(t)
	createRandomUser(t, store)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	store := requireStore(t)
	user := createRandomUser(t, store)

	_, err := store.CreateUser(context.Background(), CreateUserParams{
		Username:       user.Username,
		HashedPassword: util.RandomString(60),
	})
	require.ErrorIs(t, err, ErrUniqueViolation)
	require.Equal(t, KindConflict, ErrorKind(err))
}

func TestGetUser(t *testing.T) {
	store := requireStore(t)
	user := createRandomUser(t, store)

	got, err := store.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user, got)

	got, err = store.GetUserByUsername(context.Background(), user.Username)
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestGetUser_NotFound(t *testing.T) {
	store := requireStore(t)

	_, err := store.GetUser(context.Background(), -1)
	require.ErrorIs(t, err, ErrEntityNotFound)
	require.Equal(t, KindNotFound, ErrorKind(err))

	_, err = store.GetUserByUsername(context.Background(), "missing_"+util.RandomString(12))
	require.ErrorIs(t, err, ErrEntityNotFound)
}
