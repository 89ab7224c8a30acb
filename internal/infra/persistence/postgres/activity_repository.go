package postgres

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity. The unique index on (athlete_id, strava_activity_id)
// rejects a second import of the same Strava activity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrActivityAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return errors.Wrap(repository.ErrAthleteNotFound, "activity references unknown athlete")
		case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("activity is missing required fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// ListByAthlete returns the athlete's activities ordered by start time ascending.
func (repo *activityRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []*model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("start_time ASC, id ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// ListStravaIDs returns the Strava ids of the athlete's imported activities.
func (repo *activityRepository) ListStravaIDs(ctx context.Context, athleteID uuid.UUID) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("athlete_id = ? AND strava_activity_id IS NOT NULL", athleteID).
		Pluck("strava_activity_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list strava activity ids")
	}

	return ids, nil
}

// FindByStravaID retrieves one activity by (athlete, Strava id).
func (repo *activityRepository) FindByStravaID(ctx context.Context, athleteID uuid.UUID, stravaActivityID int64) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Where("athlete_id = ? AND strava_activity_id = ?", athleteID, stravaActivityID).
		Take(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return toActivityDomain(&activityM), nil
}

// DeleteByStravaID removes the activity matching (athlete, Strava id) through the unique index.
func (repo *activityRepository) DeleteByStravaID(ctx context.Context, athleteID uuid.UUID, stravaActivityID int64) error {
	result := repo.db.WithContext(ctx).
		Where("athlete_id = ? AND strava_activity_id = ?", athleteID, stravaActivityID).
		Delete(&model.ActivityModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// CountByAthlete returns the number of stored activities of the athlete.
func (repo *activityRepository) CountByAthlete(ctx context.Context, athleteID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("athlete_id = ?", athleteID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count activities")
	}

	return count, nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	activity := &entity.Activity{
		ID:               data.ID,
		AthleteID:        data.AthleteID,
		StravaActivityID: data.StravaActivityID,
		Date:             data.Date.UTC(),
		StartTime:        data.StartTime.UTC(),
		Timezone:         data.Timezone,
		Title:            data.Title,
		Location:         data.Location,
		Description:      data.Description,
		Distance:         data.Distance,
		Duration:         time.Duration(data.DurationSeconds) * time.Second,
		Polyline:         data.Polyline,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if data.StartTimeLocal != nil {
		local := *data.StartTimeLocal
		activity.StartTimeLocal = time.Date(local.Year(), local.Month(), local.Day(),
			local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
	}

	if data.ParkrunDurationSeconds != nil {
		parkrun := time.Duration(*data.ParkrunDurationSeconds) * time.Second
		activity.ParkrunDuration = &parkrun
	}

	return activity
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	activityM := &model.ActivityModel{
		ID:               data.ID,
		AthleteID:        data.AthleteID,
		StravaActivityID: data.StravaActivityID,
		Date:             data.Date,
		StartTime:        data.StartTime.UTC(),
		Timezone:         data.Timezone,
		Title:            data.Title,
		Location:         data.Location,
		Description:      data.Description,
		Distance:         data.Distance,
		DurationSeconds:  int64(data.Duration / time.Second),
		Polyline:         data.Polyline,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if !data.StartTimeLocal.IsZero() {
		local := data.StartTimeLocal
		activityM.StartTimeLocal = &local
	}

	if data.ParkrunDuration != nil {
		seconds := int64(*data.ParkrunDuration / time.Second)
		activityM.ParkrunDurationSeconds = &seconds
	}

	return activityM
}
