package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel is the GORM-specific struct for the 'credentials' table.
// (athlete_id, provider) is unique.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AthleteID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_credentials_athlete_provider"`
	Provider     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_credentials_athlete_provider"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text;not null"`
	ExpiresAt    time.Time `gorm:"type:timestamptz;not null"`
	Scope        string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
