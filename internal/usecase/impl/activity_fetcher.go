package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	"bpaml/internal/usecase"

	"github.com/pkg/errors"
)

// activityFetcher implements usecase.ActivityFetcher.
type activityFetcher struct {
	refresher usecase.TokenRefresher
	client    service.ActivityClient
	metrics   service.SyncMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewActivityFetcher is the constructor for activityFetcher.
func NewActivityFetcher(
	refresher usecase.TokenRefresher,
	client service.ActivityClient,
	metrics service.SyncMetrics,
	logger *slog.Logger,
) usecase.ActivityFetcher {
	return &activityFetcher{
		refresher: refresher,
		client:    client,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (f *activityFetcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// FetchRecent lists the first page of the account's activities inside window.
func (f *activityFetcher) FetchRecent(ctx context.Context, stravaID int64, window usecase.Window) (*usecase.FetchResult, error) {
	if window.IsZero() {
		var err error
		if window, err = defaultWindow(f.now()); err != nil {
			return nil, err
		}
	}
	if !window.End.After(window.Start) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "window end %s is not after start %s", window.End, window.Start)
	}

	credential, err := f.refresher.EnsureValid(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	activities, err := f.client.ListActivities(ctx, credential.AccessToken, service.ActivityQuery{
		After:   window.Start,
		Before:  window.End,
		Page:    constants.ActivitiesFirstPage,
		PerPage: constants.ActivitiesPerPage,
	})
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []entity.RemoteActivity{}
	}

	truncated := len(activities) >= constants.ActivitiesPerPage
	if truncated {
		f.log(ctx).Warn("Strava page is full, older activities in the window may be missing",
			slog.Int64("strava_id", stravaID),
			slog.Int("count", len(activities)),
		)
	}
	f.metrics.ObserveFetch(len(activities), truncated)

	return &usecase.FetchResult{Activities: activities, PossiblyTruncated: truncated}, nil
}

// FetchOne reads one activity of the account.
func (f *activityFetcher) FetchOne(ctx context.Context, stravaID, activityID int64) (*entity.RemoteActivity, error) {
	credential, err := f.refresher.EnsureValid(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	return f.client.GetActivity(ctx, credential.AccessToken, activityID)
}

// defaultWindow spans the first quarter of now's year in the reference timezone.
func defaultWindow(now time.Time) (usecase.Window, error) {
	loc, err := time.LoadLocation(constants.ReferenceTimezone)
	if err != nil {
		return usecase.Window{}, errors.Wrap(err, "failed to load reference timezone")
	}

	year := now.In(loc).Year()

	return usecase.Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.April, 1, 0, 0, 0, 0, loc),
	}, nil
}
