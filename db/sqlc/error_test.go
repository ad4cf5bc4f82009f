package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestSQLError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantKind Kind
		wantIs   error
	}{
		{
			name:     "NoRows",
			err:      pgx.ErrNoRows,
			wantKind: KindNotFound,
			wantIs:   ErrEntityNotFound,
		},
		{
			name:     "Unique",
			err:      &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_username_key"},
			wantKind: KindConflict,
			wantIs:   ErrUniqueViolation,
		},
		{
			name:     "ForeignKey",
			err:      &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "quiz_results_user_id_fkey"},
			wantKind: KindInvalid,
			wantIs:   ErrForeignKeyViolated,
		},
		{
			name:     "Check",
			err:      &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "quiz_results_total_check"},
			wantKind: KindInvalid,
			wantIs:   ErrInvalidInput,
		},
		{
			name:     "Other",
			err:      pgx.ErrTxClosed,
			wantKind: KindInternal,
			wantIs:   pgx.ErrTxClosed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := sqlError("op", entUser, tc.err, withEntityID(int64(7)))

			require.Equal(t, tc.wantKind, ErrorKind(err))
			require.ErrorIs(t, err, tc.wantIs)

			var opErr *OpError
			require.True(t, errors.As(err, &opErr))
			require.Equal(t, int64(7), opErr.EntityID)
			require.Contains(t, err.Error(), "op: user [7]: ")
		})
	}
}

func TestErrorKind_ForeignError(t *testing.T) {
	require.Equal(t, KindInternal, ErrorKind(errors.New("boom")))
}

func TestCreateQuizResult_RejectsBadScore(t *testing.T) {
	// validation happens before any query, so no pool is needed
	store := &SQLStore{}

	_, err := store.CreateQuizResult(context.Background(), CreateQuizResultParams{Score: 3, Total: 2})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, KindInvalid, ErrorKind(err))

	_, err = store.CreateQuizResult(context.Background(), CreateQuizResultParams{Score: 0, Total: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
