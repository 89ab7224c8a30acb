package postgres

import (
	"context"
	"time"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRow is a credential joined with the Strava id of its athlete.
type credentialRow struct {
	model.CredentialModel
	StravaID int64
}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByStravaID retrieves the credential of a Strava account for the given provider.
func (repo *credentialRepository) FindByStravaID(ctx context.Context, stravaID int64, provider string) (*entity.Credential, error) {
	var row credentialRow

	if err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Select("credentials.*, athletes.strava_id AS strava_id").
		Joins("JOIN athletes ON athletes.id = credentials.athlete_id").
		Where("athletes.strava_id = ? AND credentials.provider = ?", stravaID, provider).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	credential := toCredentialDomain(&row.CredentialModel)
	credential.StravaID = row.StravaID

	return credential, nil
}

// Upsert creates or replaces the credential for (athlete, provider).
func (repo *credentialRepository) Upsert(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "athlete_id"}, {Name: "provider"}},
				DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expires_at", "scope", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(credentialM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrAthleteNotFound, "credential references unknown athlete")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert credential")
	}

	stravaID := credential.StravaID
	*credential = *toCredentialDomain(credentialM)
	credential.StravaID = stravaID

	return nil
}

// UpdateTokens performs a compare-and-swap on expires_at so that only one of several
// concurrent refreshes wins.
func (repo *credentialRepository) UpdateTokens(ctx context.Context, credential *entity.Credential, prevExpiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ? AND expires_at = ?", credential.ID, prevExpiresAt.UTC()).
		Updates(tokenColumns(credential))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential tokens")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialConflict
	}

	return nil
}

// tokenColumns lists every column a refresh may change, so the stored row matches the returned credential.
func tokenColumns(credential *entity.Credential) map[string]any {
	updatedAt := credential.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return map[string]any{
		"access_token":  credential.AccessToken,
		"refresh_token": credential.RefreshToken,
		"expires_at":    credential.ExpiresAt.UTC(),
		"scope":         credential.Scope,
		"updated_at":    updatedAt.UTC(),
	}
}

// --- Mapper Functions ---

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:           data.ID,
		AthleteID:    data.AthleteID,
		Provider:     data.Provider,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    data.ExpiresAt.UTC(),
		Scope:        data.Scope,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.ID,
		AthleteID:    data.AthleteID,
		Provider:     data.Provider,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    data.ExpiresAt.UTC(),
		Scope:        data.Scope,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
