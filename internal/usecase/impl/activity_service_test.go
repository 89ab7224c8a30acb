package impl

import (
	"context"
	"testing"
	"time"

	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/domain/service"
	mockRepo "bpaml/internal/mocks/repository"
	mockService "bpaml/internal/mocks/service"
	mockUsecase "bpaml/internal/mocks/usecase"
	"bpaml/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityServiceFixtures struct {
	service      *activityService
	athleteRepo  *mockRepo.MockAthleteRepository
	activityRepo *mockRepo.MockActivityRepository
	fetcher      *mockUsecase.MockActivityFetcher
	publisher    *mockService.MockEventPublisher
	athlete      *entity.Athlete
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	athleteRepo := mockRepo.NewMockAthleteRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	fetcher := mockUsecase.NewMockActivityFetcher(t)
	publisher := mockService.NewMockEventPublisher(t)

	srv := NewActivityService(athleteRepo, activityRepo, fetcher, publisher, newLaxMetrics(t), newDiscardLogger()).(*activityService)
	srv.now = fixedClock

	return activityServiceFixtures{
		service:      srv,
		athleteRepo:  athleteRepo,
		activityRepo: activityRepo,
		fetcher:      fetcher,
		publisher:    publisher,
		athlete:      &entity.Athlete{ID: uuid.New(), StravaID: 555, FirstName: "Sam"},
	}
}

func (fx activityServiceFixtures) expectAthlete(ctx context.Context) {
	fx.athleteRepo.EXPECT().FindByStravaID(ctx, int64(555)).Return(fx.athlete, nil)
}

func TestActivityService_ListLocal(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	stored := []*entity.Activity{{ID: uuid.New(), AthleteID: fx.athlete.ID}}

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().ListByAthlete(ctx, fx.athlete.ID).Return(stored, nil)

	activities, err := fx.service.ListLocal(ctx, 555)

	require.NoError(t, err)
	assert.Equal(t, stored, activities)
}

func TestActivityService_ListLocal_UnknownAthlete(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()

	fx.athleteRepo.EXPECT().FindByStravaID(ctx, int64(555)).Return(nil, repository.ErrAthleteNotFound)

	_, err := fx.service.ListLocal(ctx, 555)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAthleteNotFound))
}

func TestActivityService_ListUnsaved(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	window := usecase.Window{Start: testNow.Add(-time.Hour), End: testNow}

	fx.expectAthlete(ctx)
	fx.fetcher.EXPECT().
		FetchRecent(ctx, int64(555), window).
		Return(&usecase.FetchResult{
			Activities:        []entity.RemoteActivity{remoteWithID(1), remoteWithID(2), remoteWithID(3)},
			PossiblyTruncated: true,
		}, nil)
	fx.activityRepo.EXPECT().ListStravaIDs(ctx, fx.athlete.ID).Return([]int64{2}, nil)

	result, err := fx.service.ListUnsaved(ctx, 555, window)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(result.Activities))
	assert.True(t, result.PossiblyTruncated)
}

func TestActivityService_Save(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	remote := parkrunRemote()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(nil, repository.ErrActivityNotFound)
	fx.fetcher.EXPECT().FetchOne(ctx, int64(555), int64(42)).Return(&remote, nil)
	fx.activityRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.AthleteID == fx.athlete.ID && a.RemoteID() == 42
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishActivityEvent(ctx, &service.ActivityEvent{
			Type:            constants.EventActivityImported,
			AthleteStravaID: 555,
			ActivityID:      42,
			OccurredAt:      testNow,
		}).
		Return(nil)

	activity, err := fx.service.Save(ctx, 555, 42)

	require.NoError(t, err)
	assert.Equal(t, "Parkrun", activity.Title)
}

func TestActivityService_Save_AlreadyStored(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(&entity.Activity{}, nil)

	_, err := fx.service.Save(ctx, 555, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityAlreadySaved))
	fx.fetcher.AssertNotCalled(t, "FetchOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityService_Save_ConcurrentDuplicate(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	remote := parkrunRemote()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(nil, repository.ErrActivityNotFound)
	fx.fetcher.EXPECT().FetchOne(ctx, int64(555), int64(42)).Return(&remote, nil)
	fx.activityRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrActivityAlreadyExists)

	_, err := fx.service.Save(ctx, 555, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityAlreadySaved))
	fx.publisher.AssertNotCalled(t, "PublishActivityEvent", mock.Anything, mock.Anything)
}

func TestActivityService_Save_MalformedRemote(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	remote := parkrunRemote()
	remote.Timezone = "garbage"

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(nil, repository.ErrActivityNotFound)
	fx.fetcher.EXPECT().FetchOne(ctx, int64(555), int64(42)).Return(&remote, nil)

	_, err := fx.service.Save(ctx, 555, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedPayload))
	fx.activityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivityService_Save_PublishFailureKeepsImport(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	remote := parkrunRemote()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(nil, repository.ErrActivityNotFound)
	fx.fetcher.EXPECT().FetchOne(ctx, int64(555), int64(42)).Return(&remote, nil)
	fx.activityRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishActivityEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	activity, err := fx.service.Save(ctx, 555, 42)

	require.NoError(t, err)
	assert.NotNil(t, activity)
}

func TestActivityService_Delete(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().DeleteByStravaID(ctx, fx.athlete.ID, int64(42)).Return(nil)
	fx.publisher.EXPECT().
		PublishActivityEvent(ctx, mock.MatchedBy(func(e *service.ActivityEvent) bool {
			return e.Type == constants.EventActivityDeleted && e.ActivityID == 42
		})).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 555, 42))
}

func TestActivityService_Delete_NotFound(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().DeleteByStravaID(ctx, fx.athlete.ID, int64(99)).Return(repository.ErrActivityNotFound)

	err := fx.service.Delete(ctx, 555, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestActivityService_Route(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()
	remoteID := int64(42)

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, remoteID).Return(&entity.Activity{
		StravaActivityID: &remoteID,
		Title:            "Parkrun",
		Polyline:         "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
		StartTime:        testNow,
	}, nil)

	feature, err := fx.service.Route(ctx, 555, remoteID)

	require.NoError(t, err)
	line, ok := feature.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 3)
	assert.Equal(t, "Parkrun", feature.Properties["title"])
}

func TestActivityService_Route_NoPolyline(t *testing.T) {
	fx := createTestActivityService(t)
	ctx := context.Background()

	fx.expectAthlete(ctx)
	fx.activityRepo.EXPECT().FindByStravaID(ctx, fx.athlete.ID, int64(42)).Return(&entity.Activity{}, nil)

	_, err := fx.service.Route(ctx, 555, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRouteUnavailable))
}
