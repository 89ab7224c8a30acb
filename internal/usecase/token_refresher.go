package usecase

import (
	"context"

	"bpaml/internal/domain/entity"
)

// TokenRefresher guarantees a usable Strava access token for an account.
type TokenRefresher interface {
	// EnsureValid returns the stored credential, refreshing and persisting it first when it has expired.
	EnsureValid(ctx context.Context, stravaID int64) (*entity.Credential, error)
}
