package db

import (
	"context"
	"testing"

	"github.com/VxidDev/eduDuck/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createRandomQuizResult(t *testing.T, store Store, userID *int64) QuizResult {
	t.Helper()

	quizID := uuid.New()
	arg := CreateQuizResultParams{
		UserID:     util.Int64ToPgxInt8(userID),
		QuizID:     util.UUIDToPgxUUID(&quizID),
		Score:      1,
		Total:      2,
		Percentage: 50,
		Breakdown:  []byte(`{"1": {"correct": "a", "user": "a", "right": true}, "2": {"correct": "b", "user": "", "right": false}}`),
	}

	result, err := store.CreateQuizResult(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	require.Equal(t, arg.UserID, result.UserID)
	require.Equal(t, arg.QuizID, result.QuizID)
	require.Equal(t, arg.Score, result.Score)
	require.Equal(t, arg.Total, result.Total)
	require.Equal(t, arg.Percentage, result.Percentage)
	require.JSONEq(t, string(arg.Breakdown), string(result.Breakdown))

	return result
}

func TestCreateQuizResult_Anonymous(t *testing.T) {
	store := requireStore(t)

	result := createRandomQuizResult(t, store, nil)
	require.False(t, result.UserID.Valid)
}

func TestCreateQuizResult_UnknownUser(t *testing.T) {
	store := requireStore(t)

	missing := int64(-1)
	_, err := store.CreateQuizResult(context.Background(), CreateQuizResultParams{
		UserID:    util.Int64ToPgxInt8(&missing),
		Score:     0,
		Total:     1,
		Breakdown: []byte(`{}`),
	})
	require.ErrorIs(t, err, ErrForeignKeyViolated)
	require.Equal(t, KindInvalid, ErrorKind(err))
}

func TestGetQuizResult(t *testing.T) {
	store := requireStore(t)
	user := createRandomUser(t, store)
	result := createRandomQuizResult(t, store, &user.ID)

	got, err := store.GetQuizResult(context.Background(), result.ID)
	require.NoError(t, err)
	require.Equal(t, result.ID, got.ID)
	require.Equal(t, user.ID, got.UserID.Int64)

	_, err = store.GetQuizResult(context.Background(), -1)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestListUserQuizResultsTx(t *testing.T) {
	store := requireStore(t)
	user := createRandomUser(t, store)

	var created []QuizResult
	for range 5 {
		created = append(created, createRandomQuizResult(t, store, &user.ID))
	}

	// another user's results must not leak in
	other := createRandomUser(t, store)
	createRandomQuizResult(t, store, &other.ID)

	page, err := store.ListUserQuizResultsTx(context.Background(), ListUserQuizResultsParams{
		UserID: user.ID,
		Limit:  2,
		Offset: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), page.Total)
	require.Len(t, page.Results, 2)

	// newest first
	require.Equal(t, created[3].ID, page.Results[0].ID)
	require.Equal(t, created[2].ID, page.Results[1].ID)

	page, err = store.ListUserQuizResultsTx(context.Background(), ListUserQuizResultsParams{
		UserID: user.ID,
		Limit:  10,
		Offset: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), page.Total)
	require.Empty(t, page.Results)
}
