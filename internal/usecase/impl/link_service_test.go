package impl

import (
	"context"
	"testing"
	"time"

	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	mockRepo "bpaml/internal/mocks/repository"
	mockService "bpaml/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type linkServiceFixtures struct {
	service        *linkService
	txManager      *mockRepo.MockTransactionManager
	repoFactory    *mockRepo.MockRepositoryFactory
	athleteRepo    *mockRepo.MockAthleteRepository
	credentialRepo *mockRepo.MockCredentialRepository
	exchanger      *mockService.MockTokenExchanger
	stateStore     *mockService.MockOAuthStateStore
	tokenService   *mockService.MockTokenService
}

func createTestLinkService(t *testing.T) linkServiceFixtures {
	fx := linkServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		repoFactory:    mockRepo.NewMockRepositoryFactory(t),
		athleteRepo:    mockRepo.NewMockAthleteRepository(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		exchanger:      mockService.NewMockTokenExchanger(t),
		stateStore:     mockService.NewMockOAuthStateStore(t),
		tokenService:   mockService.NewMockTokenService(t),
	}

	srv := NewLinkService(fx.txManager, fx.exchanger, fx.stateStore, fx.tokenService, newDiscardLogger()).(*linkService)
	srv.now = fixedClock
	fx.service = srv

	return fx
}

// expectTransaction runs the transaction body against the factory mock.
func (fx linkServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewAthleteRepository().Return(fx.athleteRepo).Maybe()
	fx.repoFactory.EXPECT().NewCredentialRepository().Return(fx.credentialRepo).Maybe()
}

func TestLinkService_AuthorizeURL(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Issue(ctx).Return("state-1", nil)
	fx.exchanger.EXPECT().AuthCodeURL("state-1").Return("https://www.strava.com/oauth/authorize?state=state-1")

	url, err := fx.service.AuthorizeURL(ctx)

	require.NoError(t, err)
	assert.Contains(t, url, "state=state-1")
}

func TestLinkService_Complete(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()
	athleteID := uuid.New()
	expiresAt := testNow.Add(6 * time.Hour)
	sessionExpiry := testNow.Add(7 * 24 * time.Hour)

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(true)
	fx.exchanger.EXPECT().Exchange(ctx, "code-1").Return(&entity.TokenGrant{
		AccessToken:  "a0",
		RefreshToken: "r0",
		ExpiresAt:    expiresAt,
		Scope:        "read,activity:read_all",
		Athlete:      &entity.Athlete{StravaID: 555, FirstName: "Sam"},
	}, nil)
	fx.expectTransaction()
	fx.athleteRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Athlete")).
		Run(func(_ context.Context, athlete *entity.Athlete) { athlete.ID = athleteID }).
		Return(nil)
	fx.credentialRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.AthleteID == athleteID &&
				c.Provider == constants.ProviderStrava &&
				c.AccessToken == "a0" &&
				c.RefreshToken == "r0" &&
				c.ExpiresAt.Equal(expiresAt)
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateSessionToken(int64(555)).Return("session-jwt", sessionExpiry, nil)

	result, err := fx.service.Complete(ctx, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "session-jwt", result.SessionToken)
	assert.Equal(t, sessionExpiry, result.ExpiresAt)
	assert.Equal(t, athleteID, result.Athlete.ID)
}

func TestLinkService_Complete_InvalidState(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "forged").Return(false)

	_, err := fx.service.Complete(ctx, "forged", "code-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthStateInvalid))
	fx.exchanger.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
}

func TestLinkService_Complete_MissingCode(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(true)

	_, err := fx.service.Complete(ctx, "state-1", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
}

func TestLinkService_Complete_ExchangeRejected(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(true)
	fx.exchanger.EXPECT().Exchange(ctx, "stale").Return(nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("rejected"))

	_, err := fx.service.Complete(ctx, "state-1", "stale")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestLinkService_Complete_StoreFailure(t *testing.T) {
	fx := createTestLinkService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(true)
	fx.exchanger.EXPECT().Exchange(ctx, "code-1").Return(&entity.TokenGrant{
		AccessToken: "a0", RefreshToken: "r0", ExpiresAt: testNow,
		Athlete: &entity.Athlete{StravaID: 555},
	}, nil)
	fx.expectTransaction()
	fx.athleteRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.Complete(ctx, "state-1", "code-1")

	require.Error(t, err)
	fx.tokenService.AssertNotCalled(t, "GenerateSessionToken", mock.Anything)
}
