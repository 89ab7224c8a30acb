// Package entity contains the core business objects of the application.
// These structs are plain Go objects, independent of any database or framework.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Athlete is a person who linked a Strava account.
type Athlete struct {
	ID         uuid.UUID
	StravaID   int64   // Strava athlete id, the account identifier used across the API
	FirstName  string
	LastName   string
	ProfileURL string  // Avatar URL reported by Strava
	City       string
	Country    string
	ParkrunID  *string // Optional parkrun barcode number
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns the display name of the athlete.
func (a *Athlete) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}
