package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/domain/service"
	"bpaml/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// linkService implements usecase.LinkUsecase.
type linkService struct {
	txManager    repository.TransactionManager
	exchanger    service.TokenExchanger
	stateStore   service.OAuthStateStore
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewLinkService is the constructor for linkService.
func NewLinkService(
	txManager repository.TransactionManager,
	exchanger service.TokenExchanger,
	stateStore service.OAuthStateStore,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.LinkUsecase {
	return &linkService{
		txManager:    txManager,
		exchanger:    exchanger,
		stateStore:   stateStore,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizeURL issues a fresh state and builds the Strava authorize URL.
func (srv *linkService) AuthorizeURL(ctx context.Context) (string, error) {
	state, err := srv.stateStore.Issue(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	return srv.exchanger.AuthCodeURL(state), nil
}

// Complete finishes the authorization-code flow and signs the athlete in.
func (srv *linkService) Complete(ctx context.Context, state, code string) (*usecase.LinkResult, error) {
	if !srv.stateStore.Consume(ctx, state) {
		return nil, domainerrors.ErrOAuthStateInvalid.WrapMessage("state was not issued or already used")
	}
	if code == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("authorization code is missing")
	}

	grant, err := srv.exchanger.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Strava code exchange failed", slog.Any("error", err))

		return nil, err
	}

	athlete := grant.Athlete
	now := srv.now().UTC()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAthleteRepository().Upsert(ctx, athlete); err != nil {
			return errors.Wrap(err, "failed to upsert athlete")
		}

		credential := &entity.Credential{
			ID:           uuid.New(),
			AthleteID:    athlete.ID,
			StravaID:     athlete.StravaID,
			Provider:     constants.ProviderStrava,
			AccessToken:  grant.AccessToken,
			RefreshToken: grant.RefreshToken,
			ExpiresAt:    grant.ExpiresAt.UTC(),
			Scope:        grant.Scope,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repoFactory.NewCredentialRepository().Upsert(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to upsert credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to link Strava account", slog.Int64("strava_id", athlete.StravaID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to link strava account")
	}

	token, expiresAt, err := srv.tokenService.GenerateSessionToken(athlete.StravaID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Strava account linked", slog.Int64("strava_id", athlete.StravaID))

	return &usecase.LinkResult{
		Athlete:      athlete,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}
