package token

import "time"

// Maker issues and verifies access tokens.
type Maker interface {
	// CreateToken creates a token for the user, valid for the duration.
	CreateToken(userID int64, duration time.Duration) (string, *Payload, error)

	// VerifyToken returns the payload of a valid token.
	VerifyToken(token string) (*Payload, error)
}
