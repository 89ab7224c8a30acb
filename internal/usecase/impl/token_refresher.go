// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/constants"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/repository"
	"bpaml/internal/domain/service"
	"bpaml/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// tokenRefresher implements usecase.TokenRefresher. Refreshes of the same account are
// collapsed in-process and guarded across processes by a conditional update on the prior expiry.
type tokenRefresher struct {
	credentialRepo repository.CredentialRepository
	exchanger      service.TokenExchanger
	metrics        service.SyncMetrics
	logger         *slog.Logger
	group          singleflight.Group
	now            func() time.Time
}

// NewTokenRefresher is the constructor for tokenRefresher.
func NewTokenRefresher(
	credentialRepo repository.CredentialRepository,
	exchanger service.TokenExchanger,
	metrics service.SyncMetrics,
	logger *slog.Logger,
) usecase.TokenRefresher {
	return newTokenRefresher(credentialRepo, exchanger, metrics, logger, time.Now)
}

func newTokenRefresher(
	credentialRepo repository.CredentialRepository,
	exchanger service.TokenExchanger,
	metrics service.SyncMetrics,
	logger *slog.Logger,
	now func() time.Time,
) *tokenRefresher {
	return &tokenRefresher{
		credentialRepo: credentialRepo,
		exchanger:      exchanger,
		metrics:        metrics,
		logger:         logger,
		now:            now,
	}
}

func (r *tokenRefresher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// EnsureValid returns a credential whose access token is usable now.
func (r *tokenRefresher) EnsureValid(ctx context.Context, stravaID int64) (*entity.Credential, error) {
	credential, err := r.find(ctx, stravaID)
	if err != nil {
		return nil, err
	}

	if !credential.IsExpired(r.now()) {
		return credential, nil
	}

	key := strconv.FormatInt(stravaID, 10) + ":" + constants.ProviderStrava
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Detach from the first caller's cancellation so collapsed callers are not failed by it.
		return r.refresh(context.WithoutCancel(ctx), credential)
	})
	if err != nil {
		return nil, err
	}

	// Every caller gets its own copy of the shared result.
	refreshed := *result.(*entity.Credential)

	return &refreshed, nil
}

func (r *tokenRefresher) find(ctx context.Context, stravaID int64) (*entity.Credential, error) {
	credential, err := r.credentialRepo.FindByStravaID(ctx, stravaID, constants.ProviderStrava)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCredentialNotFound, "strava account %d", stravaID)
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return credential, nil
}

func (r *tokenRefresher) refresh(ctx context.Context, stale *entity.Credential) (*entity.Credential, error) {
	logger := r.log(ctx).With(slog.Int64("strava_id", stale.StravaID))

	// Another request may have finished a refresh between our read and this call.
	current, err := r.find(ctx, stale.StravaID)
	if err != nil {
		return nil, err
	}
	if !current.IsExpired(r.now()) {
		r.metrics.ObserveTokenRefresh(service.RefreshOutcomeRaced)

		return current, nil
	}

	logger.Info("Refreshing expired Strava token", slog.Time("expired_at", current.ExpiresAt))

	grant, err := r.exchanger.Refresh(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProviderAuthInvalid) {
			r.metrics.ObserveTokenRefresh(service.RefreshOutcomeRejected)
			logger.Warn("Strava rejected the refresh token", slog.Any("error", err))

			return nil, err
		}

		r.metrics.ObserveTokenRefresh(service.RefreshOutcomeUnavailable)
		logger.Error("Strava token refresh failed", slog.Any("error", err))

		return nil, err
	}

	prevExpiresAt := current.ExpiresAt
	updated := *current
	updated.AccessToken = grant.AccessToken
	if grant.RefreshToken != "" {
		updated.RefreshToken = grant.RefreshToken
	}
	if grant.Scope != "" {
		updated.Scope = grant.Scope
	}
	updated.ExpiresAt = grant.ExpiresAt.UTC()
	updated.UpdatedAt = r.now().UTC()

	if err := r.credentialRepo.UpdateTokens(ctx, &updated, prevExpiresAt); err != nil {
		if !errors.Is(err, repository.ErrCredentialConflict) {
			return nil, errors.Wrap(err, "failed to persist refreshed credential")
		}

		// Another process stored its own refresh first; theirs wins.
		r.metrics.ObserveTokenRefresh(service.RefreshOutcomeRaced)
		logger.Info("Credential was refreshed concurrently, using stored tokens")

		return r.find(ctx, stale.StravaID)
	}

	r.metrics.ObserveTokenRefresh(service.RefreshOutcomeSuccess)
	logger.Info("Strava token refreshed", slog.Time("expires_at", updated.ExpiresAt))

	return &updated, nil
}
