package strava

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bpaml/config"
	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	"bpaml/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(serverURL string) *config.Config {
	return &config.Config{Strava: &config.StravaConfig{
		ClientID:       "1234",
		ClientSecret:   "secret",
		RedirectURL:    "http://localhost/oauth/strava/callback",
		BaseURL:        serverURL,
		AuthURL:        serverURL + "/oauth/authorize",
		TokenURL:       serverURL + "/oauth/token",
		Scope:          "read,activity:read_all",
		RequestTimeout: 200 * time.Millisecond,
		MaxAttempts:    3,
		RetryBackoff:   time.Millisecond,
	}}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) service.ActivityClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewActivityClient(newTestConfig(server.URL), NewHTTPClient(nil), slog.Default())
}

func TestListActivities_SendsQueryAndBearer(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/athlete/activities", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "1704067200", r.URL.Query().Get("after"))
		assert.Equal(t, "1711929600", r.URL.Query().Get("before"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "200", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 42, "name": "Parkrun", "distance": 5000, "elapsed_time": 1500,
			 "start_date": "2024-02-01T20:00:00Z", "start_date_local": "2024-02-02T06:00:00Z",
			 "timezone": "(GMT+10:00) Australia/Brisbane", "map": {"summary_polyline": "abc"}},
			{"id": 43, "name": "Easy run"}
		]`))
	})

	activities, err := client.ListActivities(context.Background(), "access-1", service.ActivityQuery{
		After: after, Before: before, Page: 1, PerPage: 200,
	})

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, int64(42), activities[0].ID)
	assert.Equal(t, "Parkrun", activities[0].Name)
	assert.InDelta(t, 5000.0, activities[0].Distance, 0.001)
	assert.Equal(t, "(GMT+10:00) Australia/Brisbane", activities[0].Timezone)
	assert.Equal(t, "abc", activities[0].Map.SummaryPolyline)
}

func TestListActivities_Unauthorized(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListActivities(context.Background(), "bad", service.ActivityQuery{Page: 1, PerPage: 200})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderAuthInvalid))
	assert.Equal(t, int32(1), calls.Load())
}

func TestListActivities_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	activities, err := client.ListActivities(context.Background(), "access", service.ActivityQuery{Page: 1, PerPage: 200})

	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.Equal(t, int32(3), calls.Load())
}

func TestListActivities_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.ListActivities(context.Background(), "access", service.ActivityQuery{Page: 1, PerPage: 200})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
	assert.Equal(t, int32(3), calls.Load())
}

func TestListActivities_TimesOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := client.ListActivities(context.Background(), "access", service.ActivityQuery{Page: 1, PerPage: 200})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestListActivities_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"`))
	})

	_, err := client.ListActivities(context.Background(), "access", service.ActivityQuery{Page: 1, PerPage: 200})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedPayload))
}

func TestGetActivity_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetActivity(context.Background(), "access", 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestGetActivity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("include_all_efforts"))
		_, _ = w.Write([]byte(`{"id": 7, "name": "Morning Ride", "map": {"polyline": "full", "summary_polyline": "sum"}}`))
	})

	activity, err := client.GetActivity(context.Background(), "access", 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), activity.ID)
	assert.Equal(t, "full", activity.Map.Polyline)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, endpointToken, endpointLabel("/api/v3/oauth/token"))
	assert.Equal(t, endpointListActivities, endpointLabel("/api/v3/athlete/activities"))
	assert.Equal(t, endpointGetActivity, endpointLabel("/api/v3/activities/12"))
	assert.Equal(t, endpointOther, endpointLabel("/api/v3/athlete"))
}

type recordingObserver struct {
	endpoints []string
	statuses  []int
}

func (o *recordingObserver) ObserveRequest(endpoint string, status int, _ time.Duration) {
	o.endpoints = append(o.endpoints, endpoint)
	o.statuses = append(o.statuses, status)
}

func TestNewHTTPClient_ReportsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	observer := &recordingObserver{}
	resp, err := NewHTTPClient(observer).Get(server.URL + "/athlete/activities")
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, []string{endpointListActivities}, observer.endpoints)
	assert.Equal(t, []int{http.StatusTeapot}, observer.statuses)
}
