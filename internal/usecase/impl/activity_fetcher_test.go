package impl

import (
	"context"
	"testing"
	"time"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	mockService "bpaml/internal/mocks/service"
	mockUsecase "bpaml/internal/mocks/usecase"
	"bpaml/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityFetcherFixtures struct {
	fetcher   *activityFetcher
	refresher *mockUsecase.MockTokenRefresher
	client    *mockService.MockActivityClient
	metrics   *mockService.MockSyncMetrics
}

func createTestActivityFetcher(t *testing.T) activityFetcherFixtures {
	refresher := mockUsecase.NewMockTokenRefresher(t)
	client := mockService.NewMockActivityClient(t)
	metrics := mockService.NewMockSyncMetrics(t)

	fetcher := NewActivityFetcher(refresher, client, metrics, newDiscardLogger()).(*activityFetcher)
	fetcher.now = fixedClock

	return activityFetcherFixtures{
		fetcher:   fetcher,
		refresher: refresher,
		client:    client,
		metrics:   metrics,
	}
}

func TestDefaultWindow(t *testing.T) {
	window, err := defaultWindow(testNow)
	require.NoError(t, err)

	loc, err := time.LoadLocation("Australia/Brisbane")
	require.NoError(t, err)
	assert.True(t, window.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, loc)))
	assert.True(t, window.End.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, int64(1704031200), window.Start.Unix())
}

func TestDefaultWindow_UsesReferenceYear(t *testing.T) {
	// 2024-12-31 15:00 UTC is already 2025 in Brisbane.
	window, err := defaultWindow(time.Date(2024, time.December, 31, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2025, window.Start.Year())
}

func TestActivityFetcher_FetchRecent_DefaultWindow(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()
	expected, err := defaultWindow(testNow)
	require.NoError(t, err)

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(newTestCredential(testNow.Add(time.Hour)), nil)
	fx.client.EXPECT().
		ListActivities(ctx, "a0", mock.MatchedBy(func(q service.ActivityQuery) bool {
			return q.After.Equal(expected.Start) && q.Before.Equal(expected.End) && q.Page == 1 && q.PerPage == 200
		})).
		Return([]entity.RemoteActivity{remoteWithID(1), remoteWithID(2)}, nil)
	fx.metrics.EXPECT().ObserveFetch(2, false).Once()

	result, err := fx.fetcher.FetchRecent(ctx, 555, usecase.Window{})

	require.NoError(t, err)
	assert.Len(t, result.Activities, 2)
	assert.False(t, result.PossiblyTruncated)
}

func TestActivityFetcher_FetchRecent_FullPageIsFlagged(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()
	window := usecase.Window{Start: testNow.Add(-24 * time.Hour), End: testNow}

	page := make([]entity.RemoteActivity, 200)
	for i := range page {
		page[i] = remoteWithID(int64(i + 1))
	}

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(newTestCredential(testNow.Add(time.Hour)), nil)
	fx.client.EXPECT().
		ListActivities(ctx, "a0", mock.AnythingOfType("service.ActivityQuery")).
		Return(page, nil)
	fx.metrics.EXPECT().ObserveFetch(200, true).Once()

	result, err := fx.fetcher.FetchRecent(ctx, 555, window)

	require.NoError(t, err)
	assert.Len(t, result.Activities, 200)
	assert.True(t, result.PossiblyTruncated)
}

func TestActivityFetcher_FetchRecent_EmptyPage(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(newTestCredential(testNow.Add(time.Hour)), nil)
	fx.client.EXPECT().
		ListActivities(ctx, "a0", mock.Anything).
		Return(nil, nil)
	fx.metrics.EXPECT().ObserveFetch(0, false).Once()

	result, err := fx.fetcher.FetchRecent(ctx, 555, usecase.Window{})

	require.NoError(t, err)
	assert.NotNil(t, result.Activities)
	assert.Empty(t, result.Activities)
}

func TestActivityFetcher_FetchRecent_InvalidWindow(t *testing.T) {
	fx := createTestActivityFetcher(t)

	_, err := fx.fetcher.FetchRecent(context.Background(), 555, usecase.Window{Start: testNow, End: testNow})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestActivityFetcher_FetchRecent_RefreshFailure(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(nil, domainerrors.ErrProviderAuthInvalid.WrapMessage("revoked"))

	_, err := fx.fetcher.FetchRecent(ctx, 555, usecase.Window{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderAuthInvalid))
	fx.client.AssertNotCalled(t, "ListActivities", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityFetcher_FetchRecent_RemoteUnavailable(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(newTestCredential(testNow.Add(time.Hour)), nil)
	fx.client.EXPECT().
		ListActivities(ctx, "a0", mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "strava returned status 503"))

	_, err := fx.fetcher.FetchRecent(ctx, 555, usecase.Window{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestActivityFetcher_FetchOne(t *testing.T) {
	fx := createTestActivityFetcher(t)
	ctx := context.Background()
	remote := parkrunRemote()

	fx.refresher.EXPECT().
		EnsureValid(ctx, int64(555)).
		Return(newTestCredential(testNow.Add(time.Hour)), nil)
	fx.client.EXPECT().
		GetActivity(ctx, "a0", int64(42)).
		Return(&remote, nil)

	activity, err := fx.fetcher.FetchOne(ctx, 555, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), activity.ID)
}
