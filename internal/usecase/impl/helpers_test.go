package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	mockService "bpaml/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

// newLaxMetrics returns a metrics mock that accepts any observation.
func newLaxMetrics(t *testing.T) *mockService.MockSyncMetrics {
	metrics := mockService.NewMockSyncMetrics(t)
	metrics.EXPECT().ObserveTokenRefresh(mock.Anything).Maybe()
	metrics.EXPECT().ObserveFetch(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ObserveImport().Maybe()
	metrics.EXPECT().ObserveDelete().Maybe()

	return metrics
}

func newTestCredential(expiresAt time.Time) *entity.Credential {
	return &entity.Credential{
		ID:           uuid.New(),
		AthleteID:    uuid.New(),
		StravaID:     555,
		Provider:     constants.ProviderStrava,
		AccessToken:  "a0",
		RefreshToken: "r0",
		ExpiresAt:    expiresAt,
		Scope:        "read,activity:read_all",
	}
}

func parkrunRemote() entity.RemoteActivity {
	return entity.RemoteActivity{
		ID:             42,
		Name:           "Parkrun",
		Distance:       5000,
		ElapsedTime:    1500,
		MovingTime:     1490,
		Type:           "Run",
		SportType:      "Run",
		StartDate:      "2024-02-01T20:00:00Z",
		StartDateLocal: "2024-02-02T06:00:00Z",
		Timezone:       "(GMT+10:00) Australia/Brisbane",
		Map:            entity.RemoteMap{SummaryPolyline: "_p~iF~ps|U_ulLnnqC_mqNvxq`@"},
	}
}

func remoteWithID(id int64) entity.RemoteActivity {
	activity := parkrunRemote()
	activity.ID = id

	return activity
}
