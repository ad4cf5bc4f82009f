package token

import (
	"testing"
	"time"

	"github.com/VxidDev/eduDuck/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	userID := util.RandomInt(1, 1000)
	duration := time.Minute

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	token, payload, err := maker.CreateToken(userID, duration)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, payload)

	payload, err = maker.VerifyToken(token)
	require.NoError(t, err)
	require.NotZero(t, payload.ID)
	require.Equal(t, userID, payload.UserID)
	require.WithinDuration(t, issuedAt, payload.IssuedAt, time.Second)
	require.WithinDuration(t, expiredAt, payload.ExpiredAt, time.Second)
}

func TestJWTMaker_ShortKey(t *testing.T) {
	_, err := NewJWTMaker(util.RandomString(minSecretKeySize - 1))
	require.Error(t, err)
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	token, payload, err := maker.CreateToken(util.RandomInt(1, 1000), -time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.ErrorIs(t, payload.Valid(), ErrTokenExpired)

	payload, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.Nil(t, payload)
}

func TestJWTMaker_AlgNone(t *testing.T) {
	payload, err := NewPayload(util.RandomInt(1, 1000), time.Minute)
	require.NoError(t, err)

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodNone, payload.GetJWTClaims())
	token, err := jwtToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	maker, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	payload, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, payload)
}

func TestJWTMaker_WrongKey(t *testing.T) {
	maker1, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)
	maker2, err := NewJWTMaker(util.RandomString(32))
	require.NoError(t, err)

	token, _, err := maker1.CreateToken(1, time.Minute)
	require.NoError(t, err)

	_, err = maker2.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
