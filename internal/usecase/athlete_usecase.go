package usecase

import (
	"context"

	"bpaml/internal/domain/entity"
)

// AthleteUsecase defines read operations on linked athletes.
type AthleteUsecase interface {
	List(ctx context.Context) ([]*entity.Athlete, error)
	Get(ctx context.Context, stravaID int64) (*entity.Athlete, error)
}
