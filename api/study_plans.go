package api

import (
	"net/http"

	"github.com/VxidDev/eduDuck/studyplan"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ParseStudyPlanRequest struct {
	Text string `json:"text" binding:"required,max=200000"`
}

type ParseStudyPlanResponse struct {
	Days []studyplan.Day `json:"days"`
}

func (service *Service) parseStudyPlan(ctx *gin.Context) {
	var req ParseStudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	days := studyplan.Split(req.Text)

	log.Info().Int("input_bytes", len(req.Text)).Int("days", len(days)).Msg("study plan parsed")

	if len(days) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(ErrNoDaysFound))
		return
	}

	ctx.JSON(http.StatusOK, ParseStudyPlanResponse{Days: days})
}
