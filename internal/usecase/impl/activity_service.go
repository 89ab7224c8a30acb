package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/domain/service"
	"bpaml/internal/usecase"
	"bpaml/internal/util"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// activityService implements usecase.ActivityUsecase.
type activityService struct {
	athleteRepo  repository.AthleteRepository
	activityRepo repository.ActivityRepository
	fetcher      usecase.ActivityFetcher
	publisher    service.EventPublisher
	metrics      service.SyncMetrics
	logger       *slog.Logger
	now          func() time.Time
}

// NewActivityService is the constructor for activityService.
func NewActivityService(
	athleteRepo repository.AthleteRepository,
	activityRepo repository.ActivityRepository,
	fetcher usecase.ActivityFetcher,
	publisher service.EventPublisher,
	metrics service.SyncMetrics,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		athleteRepo:  athleteRepo,
		activityRepo: activityRepo,
		fetcher:      fetcher,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocal returns the stored activities of the athlete.
func (srv *activityService) ListLocal(ctx context.Context, stravaID int64) ([]*entity.Activity, error) {
	athlete, err := srv.athlete(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	activities, err := srv.activityRepo.ListByAthlete(ctx, athlete.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// ListUnsaved fetches the remote window and drops what is already stored.
func (srv *activityService) ListUnsaved(ctx context.Context, stravaID int64, window usecase.Window) (*usecase.FetchResult, error) {
	athlete, err := srv.athlete(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	result, err := srv.fetcher.FetchRecent(ctx, stravaID, window)
	if err != nil {
		return nil, err
	}

	localIDs, err := srv.activityRepo.ListStravaIDs(ctx, athlete.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stored activity ids")
	}

	unsaved := Unsaved(localIDs, result.Activities)
	srv.log(ctx).Debug("Reconciled remote activities",
		slog.Int64("strava_id", stravaID),
		slog.Int("remote", len(result.Activities)),
		slog.Int("stored", len(localIDs)),
		slog.Int("unsaved", len(unsaved)),
	)

	return &usecase.FetchResult{Activities: unsaved, PossiblyTruncated: result.PossiblyTruncated}, nil
}

// Save imports one remote activity of the athlete.
func (srv *activityService) Save(ctx context.Context, stravaID, activityID int64) (*entity.Activity, error) {
	athlete, err := srv.athlete(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.activityRepo.FindByStravaID(ctx, athlete.ID, activityID); err == nil {
		return nil, errors.Wrapf(domainerrors.ErrActivityAlreadySaved, "activity %d", activityID)
	} else if !errors.Is(err, repository.ErrActivityNotFound) {
		return nil, errors.Wrap(err, "failed to look up activity")
	}

	remote, err := srv.fetcher.FetchOne(ctx, stravaID, activityID)
	if err != nil {
		return nil, err
	}

	activity, err := MapActivity(athlete.ID, remote)
	if err != nil {
		srv.log(ctx).Warn("Strava activity could not be mapped",
			slog.Int64("activity_id", activityID),
			slog.Any("error", err),
		)

		return nil, err
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrActivityAlreadyExists) {
			return nil, errors.Wrapf(domainerrors.ErrActivityAlreadySaved, "activity %d", activityID)
		}

		return nil, errors.Wrap(err, "failed to save activity")
	}

	srv.metrics.ObserveImport()
	srv.log(ctx).Info("Activity imported",
		slog.Int64("strava_id", stravaID),
		slog.Int64("activity_id", activityID),
	)
	srv.publish(ctx, constants.EventActivityImported, stravaID, activityID)

	return activity, nil
}

// Delete removes a stored activity by its Strava id.
func (srv *activityService) Delete(ctx context.Context, stravaID, activityID int64) error {
	athlete, err := srv.athlete(ctx, stravaID)
	if err != nil {
		return err
	}

	if err := srv.activityRepo.DeleteByStravaID(ctx, athlete.ID, activityID); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return errors.Wrapf(domainerrors.ErrActivityNotFound, "activity %d", activityID)
		}

		return errors.Wrap(err, "failed to delete activity")
	}

	srv.metrics.ObserveDelete()
	srv.log(ctx).Info("Activity deleted",
		slog.Int64("strava_id", stravaID),
		slog.Int64("activity_id", activityID),
	)
	srv.publish(ctx, constants.EventActivityDeleted, stravaID, activityID)

	return nil
}

// Route decodes the stored summary polyline of an activity.
func (srv *activityService) Route(ctx context.Context, stravaID, activityID int64) (*geojson.Feature, error) {
	athlete, err := srv.athlete(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	activity, err := srv.activityRepo.FindByStravaID(ctx, athlete.ID, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrActivityNotFound, "activity %d", activityID)
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	line, err := util.DecodePolyline(activity.Polyline)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrRouteUnavailable, "activity %d: %v", activityID, err)
	}
	if len(line) < 2 {
		return nil, errors.Wrapf(domainerrors.ErrRouteUnavailable, "activity %d has no route", activityID)
	}

	feature := geojson.NewFeature(line)
	feature.Properties["activity_id"] = activityID
	feature.Properties["title"] = activity.Title
	feature.Properties["distance"] = activity.Distance
	feature.Properties["start_time"] = activity.StartTime.Format(time.RFC3339)

	return feature, nil
}

func (srv *activityService) athlete(ctx context.Context, stravaID int64) (*entity.Athlete, error) {
	athlete, err := srv.athleteRepo.FindByStravaID(ctx, stravaID)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrAthleteNotFound, "strava account %d", stravaID)
		}

		return nil, errors.Wrap(err, "failed to find athlete")
	}

	return athlete, nil
}

// publish emits an activity event. Delivery failures are logged, the stored change stands.
func (srv *activityService) publish(ctx context.Context, eventType string, stravaID, activityID int64) {
	event := &service.ActivityEvent{
		Type:            eventType,
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		AthleteStravaID: stravaID,
		ActivityID:      activityID,
		OccurredAt:      srv.now().UTC(),
	}

	if err := srv.publisher.PublishActivityEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish activity event",
			slog.String("type", eventType),
			slog.Int64("activity_id", activityID),
			slog.Any("error", err),
		)
	}
}
