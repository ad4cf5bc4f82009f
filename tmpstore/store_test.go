package tmpstore

import (
	"context"
	"testing"
	"time"

	"github.com/VxidDev/eduDuck/quiz"
	"github.com/VxidDev/eduDuck/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const sampleQuiz = "1. What is 2+2? a) 3 b) 4 c) 5 d) 6|CORRECT: b|" +
	"2. Capital of France? a) Paris b) Rome c) Berlin d) Madrid|CORRECT:a|"

// newTestStore connects to the redis from the environment or skips the test.
func newTestStore(t *testing.T) Store {
	t.Helper()

	if testing.Short() {
		t.Skip("redis tests are skipped in short mode")
	}

	config, err := util.LoadConfig("..")
	if err != nil {
		t.Skipf("cannot read config: %v", err)
	}

	store := NewStore(&config)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := store.(*RedisStore).client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis is not available: %v", err)
	}

	return store
}

func TestQuizKey(t *testing.T) {
	id := uuid.MustParse("0b0e0c43-6fc1-4a4f-b1a9-8f60ab0e8b9d")
	require.Equal(t, "quiz:0b0e0c43-6fc1-4a4f-b1a9-8f60ab0e8b9d", quizKey(id))
}

func TestSaveGetDeleteQuiz(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	data := StoredQuiz{
		Quiz:      quiz.Parse(sampleQuiz),
		Source:    SourceParsed,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
	require.Equal(t, 2, data.Quiz.Len())

	id := uuid.New()
	require.NoError(t, store.SaveQuiz(ctx, id, data, time.Minute))

	got, err := store.GetQuiz(ctx, id)
	require.NoError(t, err)
	require.Equal(t, data.Quiz, got.Quiz)
	require.Equal(t, SourceParsed, got.Source)
	require.True(t, data.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, store.DeleteQuiz(ctx, id))

	_, err = store.GetQuiz(ctx, id)
	require.ErrorIs(t, err, ErrQuizNotFound)

	// second delete has nothing to remove
	require.ErrorIs(t, store.DeleteQuiz(ctx, id), ErrQuizNotFound)
}

func TestGetQuiz_Expired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.SaveQuiz(ctx, id, StoredQuiz{Quiz: quiz.Parse(sampleQuiz)}, 50*time.Millisecond))

	require.Eventually(t, func() bool {
		_, err := store.GetQuiz(ctx, id)
		return err == ErrQuizNotFound
	}, 2*time.Second, 25*time.Millisecond)
}
