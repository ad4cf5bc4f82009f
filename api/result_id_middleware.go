package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const resultIDKey = "provided_result_id"

func (service *Service) resultIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resultIDRaw := ctx.Param("result_id")

		// result ids are positive integers
		resultID, err := strconv.ParseInt(resultIDRaw, 10, 64)
		if err != nil || resultID <= 0 {
			errField := ErrorField{"result_id", fmt.Sprintf("Invalid result id: %q", resultIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidResultID, errField),
			)
			return
		}

		ctx.Set(resultIDKey, resultID)
		ctx.Next()
	}
}
