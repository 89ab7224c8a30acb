package postgres

import (
	"context"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// athleteRepository implements the repository.AthleteRepository interface.
type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository is the constructor for athleteRepository.
func NewAthleteRepository(db *gorm.DB) repository.AthleteRepository {
	return &athleteRepository{db: db}
}

// Upsert inserts the athlete or refreshes the Strava profile fields of an existing one.
// The parkrun id is owned locally and never overwritten here.
func (repo *athleteRepository) Upsert(ctx context.Context, athlete *entity.Athlete) error {
	athleteM := fromAthleteDomain(athlete)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "strava_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "profile_url", "city", "country", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(athleteM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert athlete")
	}

	*athlete = *toAthleteDomain(athleteM)

	return nil
}

// FindByStravaID retrieves an athlete by Strava athlete id.
func (repo *athleteRepository) FindByStravaID(ctx context.Context, stravaID int64) (*entity.Athlete, error) {
	var athleteM model.AthleteModel

	if err := repo.db.WithContext(ctx).
		Where("strava_id = ?", stravaID).
		Take(&athleteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAthleteNotFound
		}

		return nil, errors.Wrap(err, "failed to find athlete by strava id")
	}

	return toAthleteDomain(&athleteM), nil
}

// List returns all athletes ordered by name.
func (repo *athleteRepository) List(ctx context.Context) ([]*entity.Athlete, error) {
	var athleteModels []*model.AthleteModel

	if err := repo.db.WithContext(ctx).
		Order("first_name ASC, last_name ASC, strava_id ASC").
		Find(&athleteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	athletes := make([]*entity.Athlete, 0, len(athleteModels))
	for _, athleteM := range athleteModels {
		athletes = append(athletes, toAthleteDomain(athleteM))
	}

	return athletes, nil
}

// --- Mapper Functions ---

func toAthleteDomain(data *model.AthleteModel) *entity.Athlete {
	if data == nil {
		return nil
	}

	return &entity.Athlete{
		ID:         data.ID,
		StravaID:   data.StravaID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		ProfileURL: data.ProfileURL,
		City:       data.City,
		Country:    data.Country,
		ParkrunID:  data.ParkrunID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAthleteDomain(data *entity.Athlete) *model.AthleteModel {
	if data == nil {
		return nil
	}

	return &model.AthleteModel{
		ID:         data.ID,
		StravaID:   data.StravaID,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		ProfileURL: data.ProfileURL,
		City:       data.City,
		Country:    data.Country,
		ParkrunID:  data.ParkrunID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
