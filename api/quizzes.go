package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/VxidDev/eduDuck/quiz"
	"github.com/VxidDev/eduDuck/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ParseQuizRequest struct {
	Text string `json:"text" binding:"required,max=200000"`
}

type QuizResponse struct {
	ID        uuid.UUID `json:"id"`
	Quiz      quiz.Quiz `json:"quiz"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func createQuizResponse(quizID uuid.UUID, stored *tmpstore.StoredQuiz) QuizResponse {
	return QuizResponse{
		ID:        quizID,
		Quiz:      stored.Quiz,
		Source:    stored.Source,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}
}

type ParseQuizResponse struct {
	QuizResponse
	Warnings []quiz.SerializableWarning `json:"warnings"`
}

// saveQuiz stores q for the configured TTL under a fresh id.
func (service *Service) saveQuiz(ctx *gin.Context, q quiz.Quiz, source string) (uuid.UUID, *tmpstore.StoredQuiz, error) {
	quizID, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, nil, err
	}

	now := time.Now()
	stored := &tmpstore.StoredQuiz{
		Quiz:      q,
		Source:    source,
		CreatedAt: now,
		ExpiresAt: now.Add(service.config.QuizTTL),
	}

	if err := service.quizStore.SaveQuiz(ctx, quizID, *stored, service.config.QuizTTL); err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	return quizID, stored, nil
}

func (service *Service) parseQuiz(ctx *gin.Context) {
	var req ParseQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	warns, err := quiz.NewWarnings(service.config.MaxWarnings)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	q := service.parser.Parse(req.Text, &warns)

	warnings := make([]quiz.SerializableWarning, 0, len(warns.List()))
	warns.SerializeAll(&warnings, req.Text)

	event := log.Info().
		Int("input_bytes", len(req.Text)).
		Int("questions", q.Len()).
		Int("warnings", len(warnings))
	if dropped, firstPos, ok := warns.Truncated(); ok {
		event = event.
			Int("dropped_warnings", dropped).
			Int("first_drop_pos", firstPos)
	}
	event.Msg("quiz parsed")

	if q.Len() == 0 {
		fields := make([]ErrorField, 0, len(warnings))
		for _, w := range warnings {
			fields = append(fields, ErrorField{"text", w.Description})
		}

		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(ErrNoQuestionsFound, fields...))
		return
	}

	quizID, stored, err := service.saveQuiz(ctx, q, tmpstore.SourceParsed)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ParseQuizResponse{
		QuizResponse: createQuizResponse(quizID, stored),
		Warnings:     warnings,
	})
}

type ImportQuizRequest struct {
	Quiz *quiz.Quiz `json:"quiz" yaml:"quiz" binding:"required"`
}

// bindQuizRequest reads a YAML body when the client says so and JSON otherwise.
func bindQuizRequest(ctx *gin.Context, obj any) error {
	switch ctx.ContentType() {
	case binding.MIMEYAML, "application/yaml":
		return ctx.ShouldBindYAML(obj)
	default:
		return ctx.ShouldBindJSON(obj)
	}
}

func (service *Service) importQuiz(ctx *gin.Context) {
	var req ImportQuizRequest
	if err := bindQuizRequest(ctx, &req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if err := req.Quiz.Validate(); err != nil {
		errField := ErrorField{"quiz", err.Error()}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidQuiz, errField))
		return
	}

	quizID, stored, err := service.saveQuiz(ctx, *req.Quiz, tmpstore.SourceImported)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	log.Info().Stringer("quiz_id", quizID).Int("questions", req.Quiz.Len()).Msg("quiz imported")

	ctx.JSON(http.StatusOK, createQuizResponse(quizID, stored))
}

// loadQuiz fetches the quiz whose id was set by quizIDMiddleware.
// On failure the error response is already written.
func (service *Service) loadQuiz(ctx *gin.Context) (uuid.UUID, *tmpstore.StoredQuiz, bool) {
	quizID := ctx.MustGet(quizIDKey).(uuid.UUID)

	stored, err := service.quizStore.GetQuiz(ctx, quizID)
	if err != nil {
		if errors.Is(err, tmpstore.ErrQuizNotFound) {
			err := fmt.Errorf("%w: %s", ErrQuizNotFound, quizID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return quizID, nil, false
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return quizID, nil, false
	}

	return quizID, stored, true
}

func (service *Service) getQuiz(ctx *gin.Context) {
	quizID, stored, ok := service.loadQuiz(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, createQuizResponse(quizID, stored))
}

// deleteQuiz drops a stored quiz before it expires.
func (service *Service) deleteQuiz(ctx *gin.Context) {
	quizID := ctx.MustGet(quizIDKey).(uuid.UUID)

	if err := service.quizStore.DeleteQuiz(ctx, quizID); err != nil {
		if errors.Is(err, tmpstore.ErrQuizNotFound) {
			err := fmt.Errorf("%w: %s", ErrQuizNotFound, quizID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	log.Info().Stringer("quiz_id", quizID).Msg("quiz deleted")

	ctx.Status(http.StatusNoContent)
}

type ExportQuizRequest struct {
	Format string `json:"format" form:"format" binding:"omitempty,oneof=json yaml"`
}

// exportQuiz sends the bare quiz as a file which can later be sent to the import route.
func (service *Service) exportQuiz(ctx *gin.Context) {
	var req ExportQuizRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	quizID, stored, ok := service.loadQuiz(ctx)
	if !ok {
		return
	}

	if req.Format == "yaml" {
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"quiz-%s.yaml\"", quizID))
		ctx.YAML(http.StatusOK, stored.Quiz)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"quiz-%s.json\"", quizID))
	ctx.JSON(http.StatusOK, stored.Quiz)
}
