package impl

import (
	"context"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/usecase"

	"github.com/pkg/errors"
)

type athleteService struct {
	athleteRepo repository.AthleteRepository
}

// NewAthleteService creates a new athlete service instance
func NewAthleteService(athleteRepo repository.AthleteRepository) usecase.AthleteUsecase {
	return &athleteService{athleteRepo: athleteRepo}
}

// List returns all linked athletes
func (s *athleteService) List(ctx context.Context) ([]*entity.Athlete, error) {
	athletes, err := s.athleteRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	return athletes, nil
}

// Get returns one athlete by Strava id
func (s *athleteService) Get(ctx context.Context, stravaID int64) (*entity.Athlete, error) {
	athlete, err := s.athleteRepo.FindByStravaID(ctx, stravaID)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrAthleteNotFound, "strava account %d", stravaID)
		}

		return nil, errors.Wrap(err, "failed to find athlete")
	}

	return athlete, nil
}
