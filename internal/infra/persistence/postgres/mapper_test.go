package postgres

import (
	"testing"
	"time"

	"bpaml/internal/domain/entity"
	"bpaml/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityMapping_RoundTrip(t *testing.T) {
	remoteID := int64(42)
	parkrun := 24*time.Minute + 31*time.Second
	activity := &entity.Activity{
		ID:               uuid.New(),
		AthleteID:        uuid.New(),
		StravaActivityID: &remoteID,
		Date:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		StartTime:        time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC),
		StartTimeLocal:   time.Date(2024, 2, 2, 6, 0, 0, 0, time.UTC),
		Timezone:         "Australia/Brisbane",
		Title:            "Parkrun",
		Distance:         5000,
		Duration:         1500 * time.Second,
		ParkrunDuration:  &parkrun,
		Polyline:         "abc",
	}

	activityM := fromActivityDomain(activity)
	require.NotNil(t, activityM.StartTimeLocal)
	assert.Equal(t, int64(1500), activityM.DurationSeconds)
	require.NotNil(t, activityM.ParkrunDurationSeconds)
	assert.Equal(t, int64(1471), *activityM.ParkrunDurationSeconds)

	got := toActivityDomain(activityM)
	assert.Equal(t, activity, got)
}

func TestActivityMapping_NaiveLocalIgnoresStoredLocation(t *testing.T) {
	brisbane, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)

	local := time.Date(2024, 2, 2, 6, 0, 0, 0, brisbane)
	got := toActivityDomain(&model.ActivityModel{StartTimeLocal: &local})

	assert.Equal(t, time.Date(2024, 2, 2, 6, 0, 0, 0, time.UTC), got.StartTimeLocal)
}

func TestCredentialMapping_NormalizesExpiryToUTC(t *testing.T) {
	brisbane, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)

	credential := &entity.Credential{
		ID:        uuid.New(),
		AthleteID: uuid.New(),
		Provider:  "strava",
		ExpiresAt: time.Date(2024, 2, 2, 6, 0, 0, 0, brisbane),
	}

	got := toCredentialDomain(fromCredentialDomain(credential))

	assert.Equal(t, time.UTC, got.ExpiresAt.Location())
	assert.True(t, credential.ExpiresAt.Equal(got.ExpiresAt))
}

func TestTokenColumns_IncludesScope(t *testing.T) {
	refreshedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	credential := &entity.Credential{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    refreshedAt.Add(6 * time.Hour),
		Scope:        "read,activity:read_all,profile:read_all",
		UpdatedAt:    refreshedAt,
	}

	columns := tokenColumns(credential)

	assert.Equal(t, "new-access", columns["access_token"])
	assert.Equal(t, "new-refresh", columns["refresh_token"])
	assert.Equal(t, credential.ExpiresAt, columns["expires_at"])
	assert.Equal(t, "read,activity:read_all,profile:read_all", columns["scope"])
	assert.Equal(t, refreshedAt, columns["updated_at"])
}
