package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token is expired")
)

// Payload identifies the user a token was issued to.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrTokenExpired
	}

	return nil
}

func NewPayload(userID int64, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()

	return &Payload{
		ID:        tokenID,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiredAt: issuedAt.Add(duration),
	}, nil
}

// CustomClaims carries the Payload inside a JWT.
type CustomClaims struct {
	UserID int64     `json:"user_id"`
	ID     uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

func (p *Payload) GetJWTClaims() *CustomClaims {
	return &CustomClaims{
		UserID: p.UserID,
		ID:     p.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(p.ExpiredAt),
			IssuedAt:  jwt.NewNumericDate(p.IssuedAt),
		},
	}
}

func (c *CustomClaims) GetPayload() *Payload {
	p := &Payload{
		ID:     c.ID,
		UserID: c.UserID,
	}

	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}

	if c.ExpiresAt != nil {
		p.ExpiredAt = c.ExpiresAt.Time
	}

	return p
}
