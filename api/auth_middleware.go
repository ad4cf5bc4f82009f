package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/VxidDev/eduDuck/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationheaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

var (
	ErrMissingAuthHeader     = errors.New("authorization header is not provided")
	ErrInvalidAuthHeader     = errors.New("invalid authorization header format")
	ErrUnsupportedAuthScheme = errors.New("unsupported authorization type")
)

// extractPayload reads and verifies the bearer token of the request.
func extractPayload(ctx *gin.Context, tokenMaker token.Maker) (*token.Payload, error) {
	authorizationHeader := ctx.GetHeader(authorizationheaderKey)
	if len(authorizationHeader) == 0 {
		return nil, ErrMissingAuthHeader
	}

	fields := strings.Fields(authorizationHeader)
	if len(fields) != 2 {
		return nil, ErrInvalidAuthHeader
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != authorizationTypeBearer {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAuthScheme, fields[0])
	}

	return tokenMaker.VerifyToken(fields[1])
}

// authMiddleware aborts with 401 unless the request carries a valid bearer token.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, err := extractPayload(ctx, tokenMaker)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// optionalAuthMiddleware lets requests without the authorization header through,
// but a header that is present must hold a valid token.
func optionalAuthMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, err := extractPayload(ctx, tokenMaker)
		if errors.Is(err, ErrMissingAuthHeader) {
			ctx.Next()
			return
		}

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// optionalPayload returns the token payload set by optionalAuthMiddleware, if any.
func optionalPayload(ctx *gin.Context) (*token.Payload, bool) {
	v, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, false
	}

	payload, ok := v.(*token.Payload)
	return payload, ok
}
