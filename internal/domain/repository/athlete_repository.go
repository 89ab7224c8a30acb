// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bpaml/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAthleteNotFound is returned when no athlete matches the lookup.
var ErrAthleteNotFound = errors.New("athlete not found")

// AthleteRepository defines persistence operations for athletes.
type AthleteRepository interface {
	// Upsert creates the athlete or updates the profile of the athlete with the same Strava id.
	// The stored record, including its id, is written back into athlete.
	Upsert(ctx context.Context, athlete *entity.Athlete) error

	// FindByStravaID retrieves an athlete by Strava athlete id.
	FindByStravaID(ctx context.Context, stravaID int64) (*entity.Athlete, error)

	// List returns all athletes ordered by name.
	List(ctx context.Context) ([]*entity.Athlete, error)
}
