package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marks tokens that authenticate API requests.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
// The subject (RegisteredClaims.Subject) is the username.
type Claims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-bound identity tokens.
type TokenService interface {
	// IssueToken creates an access token for the subject and returns it with its expiry.
	IssueToken(subject string, authority string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and token type and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
