package strava

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bpaml/config"
	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	"bpaml/internal/errors"

	"golang.org/x/oauth2"
)

// maxErrorBody bounds how much of an error response is kept for logging.
const maxErrorBody = 512

// apiClient implements service.ActivityClient over the Strava v3 REST API.
type apiClient struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	maxAttempts    int
	retryBackoff   time.Duration
	logger         *slog.Logger
}

// NewActivityClient creates the activity API client.
func NewActivityClient(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.ActivityClient {
	return &apiClient{
		baseURL:        strings.TrimRight(cfg.Strava.BaseURL, "/"),
		httpClient:     httpClient,
		requestTimeout: cfg.Strava.RequestTimeout,
		maxAttempts:    cfg.Strava.MaxAttempts,
		retryBackoff:   cfg.Strava.RetryBackoff,
		logger:         logger,
	}
}

func (c *apiClient) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// ListActivities calls GET /athlete/activities for a single page.
func (c *apiClient) ListActivities(ctx context.Context, accessToken string, query service.ActivityQuery) ([]entity.RemoteActivity, error) {
	params := url.Values{}
	params.Set("after", strconv.FormatInt(query.After.Unix(), 10))
	params.Set("before", strconv.FormatInt(query.Before.Unix(), 10))
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("per_page", strconv.Itoa(query.PerPage))

	var activities []entity.RemoteActivity
	if err := c.get(ctx, accessToken, "/athlete/activities", params, nil, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetActivity calls GET /activities/{id}.
func (c *apiClient) GetActivity(ctx context.Context, accessToken string, activityID int64) (*entity.RemoteActivity, error) {
	params := url.Values{}
	params.Set("include_all_efforts", "false")

	notFound := errors.Wrapf(domainerrors.ErrActivityNotFound, "strava activity %d", activityID)

	var activity entity.RemoteActivity
	if err := c.get(ctx, accessToken, "/activities/"+strconv.FormatInt(activityID, 10), params, notFound, &activity); err != nil {
		return nil, err
	}

	return &activity, nil
}

// get performs the request with a bounded number of attempts. Only transient failures are retried.
func (c *apiClient) get(ctx context.Context, accessToken, path string, params url.Values, notFound error, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, c.retryBackoff*time.Duration(attempt-1)); err != nil {
				return errors.WithStack(err)
			}
		}

		lastErr = c.getOnce(ctx, accessToken, endpoint, notFound, out)
		if lastErr == nil || !isTransient(lastErr) {
			return lastErr
		}

		c.log(ctx).Warn("Strava request failed, retrying",
			slog.String("path", path),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.maxAttempts),
			slog.Any("error", lastErr),
		)
	}

	return lastErr
}

func (c *apiClient) getOnce(ctx context.Context, accessToken, endpoint string, notFound error, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	// The bearer header comes from oauth2's transport wrapping the shared client.
	reqCtx = context.WithValue(reqCtx, oauth2.HTTPClient, c.httpClient)
	client := oauth2.NewClient(reqCtx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log(ctx).Debug("Strava returned an error response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return classifyStatus(resp.StatusCode, notFound)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if reqCtx.Err() != nil {
			return classifyTransportError(ctx, err)
		}

		return errors.Wrapf(domainerrors.ErrMalformedPayload, "decode strava response: %v", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
