package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const quizIDKey = "provided_quiz_id"

func (service *Service) quizIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory quiz id from the request, abort with 400 on error
		quizIDRaw := ctx.Param("quiz_id")

		quizID, err := uuid.Parse(quizIDRaw)
		if err != nil {
			errField := ErrorField{"quiz_id", fmt.Sprintf("Invalid quiz id: %q", quizIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidQuizID, errField),
			)
			return
		}

		ctx.Set(quizIDKey, quizID)
		ctx.Next()
	}
}
