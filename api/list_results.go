package api

import (
	"net/http"

	db "github.com/VxidDev/eduDuck/db/sqlc"
	"github.com/VxidDev/eduDuck/token"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// page_id is bounded so that the offset stays inside int32
type ListResultsRequest struct {
	PageID   int32 `json:"page_id" form:"page_id" binding:"omitempty,min=1,max=100000"`
	PageSize int32 `json:"page_size" form:"page_size" binding:"omitempty,min=1,max=50"`
}

type ListResultsResponse struct {
	Results  []ResultResponse `json:"results"`
	Total    int64            `json:"total"`
	PageID   int32            `json:"page_id"`
	PageSize int32            `json:"page_size"`
}

func (service *Service) listMyResults(ctx *gin.Context) {
	// get token after auth middleware use
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	var req ListResultsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if req.PageID == 0 {
		req.PageID = 1
	}

	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	page, err := service.store.ListUserQuizResultsTx(ctx, db.ListUserQuizResultsParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(storeErrorStatus(err), NewErrorResponse(err))
		return
	}

	results := make([]ResultResponse, 0, len(page.Results))
	for _, r := range page.Results {
		res, err := createResultResponse(r)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
			return
		}
		results = append(results, res)
	}

	ctx.JSON(http.StatusOK, ListResultsResponse{
		Results:  results,
		Total:    page.Total,
		PageID:   req.PageID,
		PageSize: req.PageSize,
	})
}
