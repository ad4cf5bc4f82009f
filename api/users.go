package api

import (
	"fmt"
	"net/http"
	"time"

	db "github.com/VxidDev/eduDuck/db/sqlc"
	"github.com/VxidDev/eduDuck/token"
	"github.com/VxidDev/eduDuck/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper function to map database User struct into an API response
func createUserResponse(user db.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=64"`
	// bcrypt ignores everything after 72 bytes
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (service *Service) createUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	user, err := service.store.CreateUser(ctx, db.CreateUserParams{
		Username:       req.Username,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		if db.ErrorKind(err) == db.KindConflict {
			errField := ErrorField{"username", fmt.Sprintf("Username %q is already taken", req.Username)}
			ctx.JSON(http.StatusConflict, NewErrorResponse(ErrUsernameTaken, errField))
			return
		}

		ctx.JSON(storeErrorStatus(err), NewErrorResponse(err))
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user created")

	ctx.JSON(http.StatusOK, createUserResponse(user))
}

type LoginUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginUserResponse struct {
	AccessToken          string       `json:"access_token"`
	AccessTokenExpiresAt time.Time    `json:"access_token_expires_at"`
	User                 UserResponse `json:"user"`
}

func (service *Service) loginUser(ctx *gin.Context) {
	var req LoginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	user, err := service.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// an unknown username and a wrong password look the same to the client
		if db.ErrorKind(err) == db.KindNotFound {
			ctx.JSON(http.StatusUnauthorized, NewErrorResponse(ErrInvalidCredentials))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if err := util.CheckPassword(req.Password, user.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, NewErrorResponse(ErrInvalidCredentials))
		return
	}

	accessToken, accessPayload, err := service.tokenMaker.CreateToken(user.ID, service.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, LoginUserResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiredAt,
		User:                 createUserResponse(user),
	})
}


func (service *Service) getMe(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := service.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		// the token outlived its user
		if db.ErrorKind(err) == db.KindNotFound {
			err := fmt.Errorf("user with id [%d] not found", authPayload.UserID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, createUserResponse(user))
}
