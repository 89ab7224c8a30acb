package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the stored OAuth2 token pair for one athlete and provider.
type Credential struct {
	ID           uuid.UUID
	AthleteID    uuid.UUID
	StravaID     int64
	Provider     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // UTC instant after which the access token must be refreshed
	Scope        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExpired reports whether the access token can no longer be used at now.
// A credential that expires exactly at now is already expired.
func (c *Credential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// TokenGrant is the result of a token exchange with the provider.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Scope        string
	Athlete      *Athlete // Only present on authorization code exchanges
}
