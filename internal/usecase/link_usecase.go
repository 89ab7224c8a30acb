package usecase

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"
)

// LinkResult is returned once a Strava account was linked.
type LinkResult struct {
	Athlete      *entity.Athlete `json:"athlete"`
	SessionToken string          `json:"session_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// LinkUsecase drives the Strava authorization-code flow.
type LinkUsecase interface {
	// AuthorizeURL issues a state and returns the URL the athlete is redirected to.
	AuthorizeURL(ctx context.Context) (string, error)

	// Complete validates the state, exchanges the code and stores the athlete and its credential.
	Complete(ctx context.Context, state, code string) (*LinkResult, error)
}
