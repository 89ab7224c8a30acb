package usecase

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// Window bounds the start time of remote activities. Start is inclusive, End exclusive.
// The zero Window selects the default import window.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no bound was given.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// FetchResult is one page of remote activities.
type FetchResult struct {
	Activities []entity.RemoteActivity
	// PossiblyTruncated is set when the page was full, so more activities may exist in the window.
	PossiblyTruncated bool
}

// ActivityFetcher reads activities from Strava on behalf of an account.
type ActivityFetcher interface {
	// FetchRecent returns the first page of activities started inside window.
	FetchRecent(ctx context.Context, stravaID int64, window Window) (*FetchResult, error)

	// FetchOne returns a single activity by its Strava id.
	FetchOne(ctx context.Context, stravaID, activityID int64) (*entity.RemoteActivity, error)
}

// ActivityUsecase defines the activity sync operations exposed to delivery.
type ActivityUsecase interface {
	// ListLocal returns the athlete's stored activities ordered by start time.
	ListLocal(ctx context.Context, stravaID int64) ([]*entity.Activity, error)

	// ListUnsaved returns the remote activities in window that are not stored yet.
	ListUnsaved(ctx context.Context, stravaID int64, window Window) (*FetchResult, error)

	// Save imports one remote activity.
	Save(ctx context.Context, stravaID, activityID int64) (*entity.Activity, error)

	// Delete removes a stored activity by its Strava id.
	Delete(ctx context.Context, stravaID, activityID int64) error

	// Route returns the stored route of an activity as a GeoJSON feature.
	Route(ctx context.Context, stravaID, activityID int64) (*geojson.Feature, error)
}
