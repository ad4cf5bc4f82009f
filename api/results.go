package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/VxidDev/eduDuck/db/sqlc"
	"github.com/VxidDev/eduDuck/grading"
	"github.com/VxidDev/eduDuck/quiz"
	"github.com/VxidDev/eduDuck/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ResultResponse struct {
	ID         int64           `json:"id"`
	UserID     *int64          `json:"user_id"`
	QuizID     *uuid.UUID      `json:"quiz_id"`
	Score      int32           `json:"score"`
	Total      int32           `json:"total"`
	Percentage float64         `json:"percentage"`
	Results    grading.Results `json:"results"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper function to map database QuizResult struct into an API response
func createResultResponse(result db.QuizResult) (ResultResponse, error) {
	var breakdown grading.Results
	if err := json.Unmarshal(result.Breakdown, &breakdown); err != nil {
		return ResultResponse{}, fmt.Errorf("failed to parse result breakdown: %w", err)
	}

	return ResultResponse{
		ID:         result.ID,
		UserID:     util.PgxInt8ToInt64(result.UserID),
		QuizID:     util.PgxUUIDToUUID(result.QuizID),
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Results:    breakdown,
		CreatedAt:  result.CreatedAt,
	}, nil
}

// gradeAndSave grades answers against q and persists the outcome,
// attributing it to the token owner when there is one.
// On failure the error response is already written.
func (service *Service) gradeAndSave(ctx *gin.Context, quizID *uuid.UUID, q quiz.Quiz, answers map[string]string) {
	res, err := grading.Grade(q, answers)
	if err != nil {
		if errors.Is(err, grading.ErrNoQuizData) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	breakdown, err := json.Marshal(res.Results)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	arg := db.CreateQuizResultParams{
		QuizID:     util.UUIDToPgxUUID(quizID),
		Score:      int32(res.Score),
		Total:      int32(res.Total),
		Percentage: res.Percentage,
		Breakdown:  breakdown,
	}

	if payload, ok := optionalPayload(ctx); ok {
		arg.UserID = util.Int64ToPgxInt8(&payload.UserID)
	}

	result, err := service.store.CreateQuizResult(ctx, arg)
	if err != nil {
		ctx.JSON(storeErrorStatus(err), NewErrorResponse(err))
		return
	}

	log.Info().
		Int64("result_id", result.ID).
		Int("score", res.Score).
		Int("total", res.Total).
		Msg("quiz graded")

	// the breakdown was just produced by grading, no need to decode it back
	ctx.JSON(http.StatusOK, ResultResponse{
		ID:         result.ID,
		UserID:     util.PgxInt8ToInt64(result.UserID),
		QuizID:     util.PgxUUIDToUUID(result.QuizID),
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Results:    res.Results,
		CreatedAt:  result.CreatedAt,
	})
}

type SubmitQuizResultRequest struct {
	// Answers maps question id to the chosen letter.
	Answers map[string]string `json:"answers" binding:"required"`
}

func (service *Service) submitQuizResult(ctx *gin.Context) {
	var req SubmitQuizResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	quizID, stored, ok := service.loadQuiz(ctx)
	if !ok {
		return
	}

	service.gradeAndSave(ctx, &quizID, stored.Quiz, req.Answers)
}

type SubmitInlineResultRequest struct {
	Quiz    *quiz.Quiz        `json:"quiz" binding:"required"`
	Answers map[string]string `json:"answers" binding:"required"`
}

func (service *Service) submitInlineResult(ctx *gin.Context) {
	var req SubmitInlineResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if req.Quiz.Len() > quiz.MaxQuestions {
		errField := ErrorField{"quiz", quiz.ErrTooManyQuestions.Error()}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidQuiz, errField))
		return
	}

	service.gradeAndSave(ctx, nil, *req.Quiz, req.Answers)
}

func (service *Service) getResult(ctx *gin.Context) {
	resultID := ctx.MustGet(resultIDKey).(int64)

	result, err := service.store.GetQuizResult(ctx, resultID)
	if err != nil {
		if db.ErrorKind(err) == db.KindNotFound {
			err := fmt.Errorf("%w: [%d]", ErrResultNotFound, resultID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	res, err := createResultResponse(result)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, res)
}
