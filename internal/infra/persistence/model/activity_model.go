package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel is the GORM-specific struct for the 'activities' table.
// Durations are stored as whole seconds.
type ActivityModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AthleteID              uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_activities_athlete_strava_id"`
	StravaActivityID       *int64     `gorm:"uniqueIndex:uq_activities_athlete_strava_id"`
	Date                   time.Time  `gorm:"type:date;not null"`
	StartTime              time.Time  `gorm:"type:timestamptz;not null;index"`
	StartTimeLocal         *time.Time `gorm:"type:timestamp"`
	Timezone               string     `gorm:"type:varchar(64);not null;default:'UTC'"`
	Title                  string     `gorm:"type:varchar(200);not null;default:''"`
	Location               string     `gorm:"type:varchar(200);not null;default:''"`
	Description            string     `gorm:"type:varchar(4000);not null;default:''"`
	Distance               float64    `gorm:"not null;default:0"`
	DurationSeconds        int64      `gorm:"column:strava_duration;not null;default:0"`
	ParkrunDurationSeconds *int64     `gorm:"column:parkrun_duration"`
	Polyline               string     `gorm:"type:varchar(4000);not null;default:''"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
