package repository

import (
	"context"

	"bpaml/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrActivityNotFound is returned when no activity matches the lookup.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrActivityAlreadyExists is returned when the athlete already has an activity with the same Strava id.
	ErrActivityAlreadyExists = errors.New("activity already exists")
)

// ActivityRepository stores normalized activities per athlete.
type ActivityRepository interface {
	// Create persists a new activity. A second activity with the same (athlete, Strava id) fails
	// with ErrActivityAlreadyExists and writes nothing.
	Create(ctx context.Context, activity *entity.Activity) error

	// ListByAthlete returns the athlete's activities ordered by start time ascending.
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*entity.Activity, error)

	// ListStravaIDs returns the Strava ids of the athlete's imported activities.
	ListStravaIDs(ctx context.Context, athleteID uuid.UUID) ([]int64, error)

	// FindByStravaID retrieves one activity by (athlete, Strava id).
	FindByStravaID(ctx context.Context, athleteID uuid.UUID, stravaActivityID int64) (*entity.Activity, error)

	// DeleteByStravaID removes the activity matching (athlete, Strava id).
	// It returns ErrActivityNotFound when nothing matched.
	DeleteByStravaID(ctx context.Context, athleteID uuid.UUID, stravaActivityID int64) error

	// CountByAthlete returns the number of stored activities of the athlete.
	CountByAthlete(ctx context.Context, athleteID uuid.UUID) (int64, error)
}
