package model

import (
	"time"

	"github.com/google/uuid"
)

// AthleteModel is the GORM-specific struct for the 'athletes' table.
type AthleteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StravaID   int64     `gorm:"not null;uniqueIndex"`
	FirstName  string    `gorm:"type:varchar(100);not null;default:''"`
	LastName   string    `gorm:"type:varchar(100);not null;default:''"`
	ProfileURL string    `gorm:"type:varchar(500);not null;default:''"`
	City       string    `gorm:"type:varchar(100);not null;default:''"`
	Country    string    `gorm:"type:varchar(100);not null;default:''"`
	ParkrunID  *string   `gorm:"type:varchar(20)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AthleteModel) TableName() string {
	return "athletes"
}
