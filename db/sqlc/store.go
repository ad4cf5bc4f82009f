package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUser(ctx context.Context, userID int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	CreateQuizResult(ctx context.Context, arg CreateQuizResultParams) (QuizResult, error)
	GetQuizResult(ctx context.Context, resultID int64) (QuizResult, error)
	ListUserQuizResultsTx(ctx context.Context, arg ListUserQuizResultsParams) (ListUserQuizResultsResult, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// execTx runs fn inside a transaction with the given isolation level.
// The transaction is rolled back if fn returns an error.
func (store *SQLStore) execTx(ctx context.Context, opts pgx.TxOptions, fn func(*Queries) error) error {
	tx, err := store.connPool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}
