package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a normalized activity stored for an athlete.
type Activity struct {
	ID               uuid.UUID
	AthleteID        uuid.UUID
	StravaActivityID *int64    // nil for activities that were not imported from Strava
	Date             time.Time // calendar date of the UTC start, at midnight UTC
	StartTime        time.Time // UTC instant, attached to Timezone for display
	StartTimeLocal   time.Time // naive wall clock; the location carries no meaning
	Timezone         string    // IANA name, e.g. Australia/Brisbane
	Title            string
	Location         string
	Description      string
	Distance         float64       // metres
	Duration         time.Duration // elapsed time recorded by Strava
	ParkrunDuration  *time.Duration
	Polyline         string // encoded summary polyline
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RemoteID returns the Strava activity id, or 0 when the activity was not imported.
func (a *Activity) RemoteID() int64 {
	if a.StravaActivityID == nil {
		return 0
	}

	return *a.StravaActivityID
}
