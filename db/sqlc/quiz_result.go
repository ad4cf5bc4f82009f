package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	opCreateQuizResult      = "create-quiz-result"
	opGetQuizResult         = "get-quiz-result"
	opListUserQuizResultsTx = "list-user-quiz-results-tx"
)

type CreateQuizResultParams struct {
	// UserID is NULL for anonymous submissions.
	UserID pgtype.Int8 `json:"user_id"`

	// QuizID is NULL when the quiz was submitted inline.
	QuizID pgtype.UUID `json:"quiz_id"`

	Score      int32   `json:"score"`
	Total      int32   `json:"total"`
	Percentage float64 `json:"percentage"`

	// Breakdown is the JSON per-question result.
	Breakdown []byte `json:"breakdown"`
}

// CreateQuizResult stores a graded submission.
func (s *SQLStore) CreateQuizResult(ctx context.Context, arg CreateQuizResultParams) (QuizResult, error) {
	if arg.Total <= 0 || arg.Score < 0 || arg.Score > arg.Total {
		err := fmt.Errorf("%w: score %d of %d", ErrInvalidInput, arg.Score, arg.Total)
		return QuizResult{}, newOpError(opCreateQuizResult, KindInvalid, entQuizResult, err)
	}

	result, err := s.createQuizResult(ctx, createQuizResultParams(arg))
	if err != nil {
		return QuizResult{}, sqlError(opCreateQuizResult, entQuizResult, err)
	}

	return result, nil
}

func (s *SQLStore) GetQuizResult(ctx context.Context, resultID int64) (QuizResult, error) {
	result, err := s.getQuizResult(ctx, resultID)
	if err != nil {
		return QuizResult{}, sqlError(opGetQuizResult, entQuizResult, err, withEntityID(resultID))
	}

	return result, nil
}

type ListUserQuizResultsParams struct {
	UserID int64 `json:"user_id"`
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

type ListUserQuizResultsResult struct {
	Results []QuizResult `json:"results"`

	// Total is the number of all the user's results, not only the returned page.
	Total int64 `json:"total"`
}

// ListUserQuizResultsTx returns one page of the user's results, newest first,
// and the overall count, both read from the same snapshot.
func (s *SQLStore) ListUserQuizResultsTx(ctx context.Context, arg ListUserQuizResultsParams) (ListUserQuizResultsResult, error) {
	var result ListUserQuizResultsResult

	opts := pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}

	err := s.execTx(ctx, opts, func(q *Queries) error {
		var err error

		result.Results, err = q.listUserQuizResults(ctx, listUserQuizResultsParams{
			UserID: arg.UserID,
			Lim:    arg.Limit,
			Off:    arg.Offset,
		})
		if err != nil {
			return err
		}

		result.Total, err = q.countUserQuizResults(ctx, arg.UserID)
		return err
	})

	if err != nil {
		return ListUserQuizResultsResult{}, sqlError(opListUserQuizResultsTx, entUser, err, withEntityID(arg.UserID))
	}

	return result, nil
}
