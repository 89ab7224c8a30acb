package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a session token.
type Claims struct {
	StravaID int64  `json:"sid"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for a linked Strava account.
	GenerateSessionToken(stravaID int64) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature, expiry and type of a session token.
	ValidateToken(tokenString string) (*Claims, error)
}
