package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/VxidDev/eduDuck/quiz"
	"github.com/VxidDev/eduDuck/util"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key prefixes for the stored entities
const (
	QuizPrefix = "quiz:"
)

// ErrQuizNotFound is returned when the quiz was never stored or has expired.
var ErrQuizNotFound = errors.New("quiz not found or expired")

// Where the stored quiz came from
const (
	SourceParsed   = "parsed"
	SourceImported = "imported"
)

// Quiz kept between requests so it can be fetched, exported and graded.
type StoredQuiz struct {
	Quiz      quiz.Quiz `json:"quiz"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	SaveQuiz(ctx context.Context, quizID uuid.UUID, data StoredQuiz, ttl time.Duration) error
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*StoredQuiz, error)
	DeleteQuiz(ctx context.Context, quizID uuid.UUID) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

func quizKey(quizID uuid.UUID) string {
	return QuizPrefix + quizID.String()
}

// SaveQuiz stores the quiz under its ID. The key expires after ttl.
func (store *RedisStore) SaveQuiz(
	ctx context.Context,
	quizID uuid.UUID,
	data StoredQuiz,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize quiz: %w", err)
	}

	return store.client.Set(ctx, quizKey(quizID), jsonData, ttl).Err()
}

// GetQuiz returns ErrQuizNotFound if the quiz is missing or expired.
func (store *RedisStore) GetQuiz(ctx context.Context, quizID uuid.UUID) (*StoredQuiz, error) {
	jsonData, err := store.client.Get(ctx, quizKey(quizID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	var stored StoredQuiz
	if err := json.Unmarshal(jsonData, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse stored quiz json: %w", err)
	}

	return &stored, nil
}

// DeleteQuiz removes the quiz before its TTL runs out.
// It returns ErrQuizNotFound if there was nothing to remove.
func (store *RedisStore) DeleteQuiz(ctx context.Context, quizID uuid.UUID) error {
	n, err := store.client.Del(ctx, quizKey(quizID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	if n == 0 {
		return ErrQuizNotFound
	}

	return nil
}
