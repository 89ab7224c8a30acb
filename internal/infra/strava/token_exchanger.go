package strava

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bpaml/config"
	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	"bpaml/internal/errors"

	"golang.org/x/oauth2"
)

// tokenExchanger implements service.TokenExchanger with golang.org/x/oauth2.
// Strava expects client_id and client_secret as form fields, not basic auth.
type tokenExchanger struct {
	oauthConfig    *oauth2.Config
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// NewTokenExchanger creates the Strava token exchanger.
func NewTokenExchanger(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (service.TokenExchanger, error) {
	if cfg.Strava.ClientID == "" || cfg.Strava.ClientSecret == "" {
		return nil, errors.New("strava client id and secret must be provided")
	}

	return &tokenExchanger{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Strava.ClientID,
			ClientSecret: cfg.Strava.ClientSecret,
			RedirectURL:  cfg.Strava.RedirectURL,
			Scopes:       []string{cfg.Strava.Scope},
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.Strava.AuthURL,
				TokenURL:  cfg.Strava.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient:     httpClient,
		requestTimeout: cfg.Strava.RequestTimeout,
		logger:         logger,
		now:            time.Now,
	}, nil
}

func (e *tokenExchanger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// AuthCodeURL returns the Strava authorize URL for state.
func (e *tokenExchanger) AuthCodeURL(state string) string {
	return e.oauthConfig.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto"))
}

// Exchange trades an authorization code for tokens and the athlete summary.
func (e *tokenExchanger) Exchange(ctx context.Context, code string) (*entity.TokenGrant, error) {
	reqCtx, cancel := e.requestContext(ctx)
	defer cancel()

	token, err := e.oauthConfig.Exchange(reqCtx, code)
	if err != nil {
		return nil, e.classify(ctx, err, domainerrors.ErrOAuthCodeInvalid.WrapMessage("strava rejected the authorization code"))
	}

	grant := e.toGrant(token)

	athlete, err := athleteFromToken(token)
	if err != nil {
		return nil, err
	}
	grant.Athlete = athlete

	return grant, nil
}

// Refresh posts grant_type=refresh_token to the token endpoint.
func (e *tokenExchanger) Refresh(ctx context.Context, refreshToken string) (*entity.TokenGrant, error) {
	reqCtx, cancel := e.requestContext(ctx)
	defer cancel()

	// An empty access token forces the token source to refresh.
	source := e.oauthConfig.TokenSource(reqCtx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, e.classify(ctx, err, domainerrors.ErrProviderAuthInvalid.WrapMessage("strava rejected the refresh token"))
	}

	return e.toGrant(token), nil
}

func (e *tokenExchanger) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	reqCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)

	return context.WithValue(reqCtx, oauth2.HTTPClient, e.httpClient), cancel
}

// classify maps token endpoint failures: 4xx rejections become rejected, everything else
// (timeouts, connection errors, 429, 5xx) is unavailable.
func (e *tokenExchanger) classify(ctx context.Context, err error, rejected error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		status := retrieveErr.Response.StatusCode
		e.log(ctx).Warn("Strava token endpoint returned an error",
			slog.Int("status", status),
			slog.String("error_code", retrieveErr.ErrorCode),
			slog.String("body", truncate(string(retrieveErr.Body), maxErrorBody)),
		)

		if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
			return errors.Wrapf(domainerrors.ErrProviderUnavailable, "strava token endpoint returned status %d", status)
		}

		return rejected
	}

	return classifyTransportError(ctx, err)
}

// toGrant prefers the absolute expires_at of the response over the relative expires_in.
func (e *tokenExchanger) toGrant(token *oauth2.Token) *entity.TokenGrant {
	grant := &entity.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry.UTC(),
	}

	if expiresAt, ok := int64Extra(token.Extra("expires_at")); ok && expiresAt > 0 {
		grant.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	}
	if grant.ExpiresAt.IsZero() {
		// Strava always sends an expiry; without one the token is treated as expiring now.
		grant.ExpiresAt = e.now().UTC()
	}

	if scope, ok := token.Extra("scope").(string); ok {
		grant.Scope = scope
	}

	return grant
}

// stravaAthlete is the summary athlete returned with an authorization code exchange.
type stravaAthlete struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Profile   string `json:"profile"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

func athleteFromToken(token *oauth2.Token) (*entity.Athlete, error) {
	raw := token.Extra("athlete")
	if raw == nil {
		return nil, domainerrors.ErrMalformedPayload.WrapMessage("token response carries no athlete")
	}

	// Re-encode the generic map so the struct tags do the field mapping.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMalformedPayload, "encode athlete: %v", err)
	}

	var athlete stravaAthlete
	if err := json.Unmarshal(data, &athlete); err != nil || athlete.ID == 0 {
		return nil, domainerrors.ErrMalformedPayload.WrapMessage("token response carries an invalid athlete")
	}

	return &entity.Athlete{
		StravaID:   athlete.ID,
		FirstName:  athlete.FirstName,
		LastName:   athlete.LastName,
		ProfileURL: athlete.Profile,
		City:       athlete.City,
		Country:    athlete.Country,
	}, nil
}

func int64Extra(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()

		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)

		return i, err == nil
	default:
		return 0, false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
