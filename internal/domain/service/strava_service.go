package service

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"
)

// ActivityQuery selects one page of the athlete's activities.
// After is inclusive and Before exclusive.
type ActivityQuery struct {
	After   time.Time
	Before  time.Time
	Page    int
	PerPage int
}

// TokenExchanger talks to the Strava OAuth token endpoint.
type TokenExchanger interface {
	// AuthCodeURL returns the authorize URL the athlete is redirected to.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a token grant that includes the athlete profile.
	Exchange(ctx context.Context, code string) (*entity.TokenGrant, error)

	// Refresh trades a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenGrant, error)
}

// ActivityClient calls the Strava activity endpoints with a bearer token.
type ActivityClient interface {
	// ListActivities returns one page of the authenticated athlete's activities.
	ListActivities(ctx context.Context, accessToken string, query ActivityQuery) ([]entity.RemoteActivity, error)

	// GetActivity returns one activity by id.
	GetActivity(ctx context.Context, accessToken string, activityID int64) (*entity.RemoteActivity, error)
}

// OAuthStateStore issues and verifies the single-use state parameter of the authorize redirect.
type OAuthStateStore interface {
	// Issue creates a new random state.
	Issue(ctx context.Context) (string, error)

	// Consume reports whether state was issued and not yet used, and invalidates it.
	Consume(ctx context.Context, state string) bool
}
